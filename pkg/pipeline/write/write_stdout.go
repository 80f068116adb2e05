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

package write

import (
	"fmt"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/netobserv/cidr-compactor/pkg/cidr"
	"github.com/netobserv/cidr-compactor/pkg/compact"
	log "github.com/sirupsen/logrus"
)

type writeStdout struct {
	format string
}

// Write renders the summary lines followed by the output set, either as a
// flat list of canonical CIDRs or as a tree listing where each line carries
// the node's 0/1 bit path from the root.
func (w *writeStdout) Write(tree *compact.Trie) error {
	log.Debugf("writing %d cidrs, format=%s", tree.OutputCount(), w.format)
	fmt.Printf("coverage: %v\n", tree.Coverage())
	fmt.Printf("nodes: %d\n", tree.NodeCount())
	fmt.Printf("cidrs: %d\n", tree.OutputCount())

	tree.All()(func(path string, p cidr.Prefix) bool {
		if w.format == api.FormatTree {
			fmt.Printf("%s %s\n", path, p)
		} else {
			fmt.Println(p)
		}
		return true
	})
	return nil
}

// NewWriteStdout create a new write
func NewWriteStdout(params api.WriteStdout) (Writer, error) {
	format := params.Format
	if format == "" {
		format = api.FormatFlat
	}
	return &writeStdout{format: format}, nil
}
