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

package main

import (
	"fmt"

	operationalMetrics "github.com/netobserv/cidr-compactor/pkg/operational/metrics"
	"github.com/netobserv/cidr-compactor/pkg/pipeline"
)

func main() {
	// Importing the pipeline package registers its operational metrics,
	// which fills up the documentation entries rendered below.
	var _ *pipeline.Pipeline

	header := `
> Note: this file was automatically generated, to update execute "make docs"

# cidr-compactor Operational Metrics

Each table below provides documentation for an exported cidr-compactor operational metric.

	`
	doc := operationalMetrics.GetDocumentation()
	fmt.Printf("%s\n%s\n", header, doc)
}
