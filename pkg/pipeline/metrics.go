/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package pipeline

import (
	operationalMetrics "github.com/netobserv/cidr-compactor/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsIngested = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "records_ingested_total",
		Help: "Number of well-formed CIDR records folded into the trie",
	})
	parseErrors = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "parse_errors_total",
		Help: "Number of malformed input records",
	})
	mergesApplied = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "merges_applied_total",
		Help: "Number of lossy merges performed by the reduction loop",
	})
	coverageRatio = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: "coverage_ratio",
		Help: "Fraction of the IPv4 space the current output set covers",
	})
	outputCidrs = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: "output_cidrs",
		Help: "Number of CIDR entries the current trie state renders",
	})
	trieNodes = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: "trie_nodes",
		Help: "Number of nodes in the aggregation trie",
	})
)
