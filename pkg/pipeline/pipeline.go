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
	"fmt"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/netobserv/cidr-compactor/pkg/cidr"
	"github.com/netobserv/cidr-compactor/pkg/compact"
	"github.com/netobserv/cidr-compactor/pkg/config"
	"github.com/netobserv/cidr-compactor/pkg/pipeline/ingest"
	"github.com/netobserv/cidr-compactor/pkg/pipeline/write"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Pipeline runs the batch in three synchronous steps: ingest every record
// into the trie, reduce the trie to the configured bound, write the result.
// Reduction must not start before the last record is folded in; the merge
// costs are only meaningful on the complete trie.
type Pipeline struct {
	ingester     ingest.Ingester
	writer       write.Writer
	tree         *compact.Trie
	maxCidrs     int
	abortOnError bool
}

// NewPipeline creates the stages from the validated configuration.
func NewPipeline(cfg *config.ConfigFileStruct) (*Pipeline, error) {
	ingester, err := ingest.NewIngestFile(cfg.Ingest)
	if err != nil {
		return nil, err
	}
	writer, err := write.NewWriteStdout(cfg.Write)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		ingester:     ingester,
		writer:       writer,
		tree:         compact.New(),
		maxCidrs:     cfg.Compact.MaxCidrs,
		abortOnError: cfg.Compact.OnError == api.OnErrorAbort,
	}, nil
}

func (p *Pipeline) processRecord(record string) error {
	prefix, err := cidr.Parse(record)
	if err != nil {
		parseErrors.Inc()
		if p.abortOnError {
			return errors.Wrap(err, "aborting on malformed record")
		}
		log.Warnf("skipping malformed record: %v", err)
		return nil
	}
	p.tree.Insert(prefix)
	recordsIngested.Inc()
	return nil
}

// Run executes the batch. Progress lines report the coverage and entry count
// as they stand before each merge; the writer emits the final summary and
// the output set.
func (p *Pipeline) Run() error {
	if err := p.ingester.Ingest(p.processRecord); err != nil {
		return err
	}
	log.Infof("ingest complete: cidrs=%d nodes=%d coverage=%v",
		p.tree.OutputCount(), p.tree.NodeCount(), p.tree.Coverage())

	merges := p.tree.Reduce(p.maxCidrs, func(coverage float64, outputs int) {
		fmt.Printf("coverage: %v, cidrs: %d\n", coverage, outputs)
	})
	mergesApplied.Add(float64(merges))
	coverageRatio.Set(p.tree.Coverage())
	outputCidrs.Set(float64(p.tree.OutputCount()))
	trieNodes.Set(float64(p.tree.NodeCount()))

	return p.writer.Write(p.tree)
}
