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
	"io"
	"os"
	"strings"
	"testing"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/netobserv/cidr-compactor/pkg/cidr"
	"github.com/netobserv/cidr-compactor/pkg/compact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, run func()) []string {
	t.Helper()

	// Intercept standard output
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	run()

	_ = w.Close()
	os.Stdout = oldStdout
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	_ = r.Close()
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}

func testTree(t *testing.T) *compact.Trie {
	t.Helper()
	tree := compact.New()
	tree.Insert(cidr.MustParse("16.0.0.0/4"))
	tree.Insert(cidr.MustParse("192.0.0.0/4"))
	return tree
}

func Test_WriteStdout_Flat(t *testing.T) {
	ws, err := NewWriteStdout(api.WriteStdout{})
	require.NoError(t, err)

	tree := testTree(t)
	lines := captureStdout(t, func() {
		require.NoError(t, ws.Write(tree))
	})

	assert.Equal(t, []string{
		"coverage: 0.125",
		"nodes: 9",
		"cidrs: 2",
		"16.0.0.0/4",
		"192.0.0.0/4",
	}, lines)
}

func Test_WriteStdout_Tree(t *testing.T) {
	ws, err := NewWriteStdout(api.WriteStdout{Format: api.FormatTree})
	require.NoError(t, err)

	tree := testTree(t)
	lines := captureStdout(t, func() {
		require.NoError(t, ws.Write(tree))
	})

	assert.Equal(t, []string{
		"coverage: 0.125",
		"nodes: 9",
		"cidrs: 2",
		"0001 16.0.0.0/4",
		"1100 192.0.0.0/4",
	}, lines)
}
