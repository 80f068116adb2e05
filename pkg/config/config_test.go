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

package config

import (
	"testing"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	opts := Options{
		Input:    "input.txt",
		MaxCidrs: 25,
		OnError:  api.OnErrorAbort,
		Format:   api.FormatTree,
	}
	cfg, err := ParseConfig(&opts)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.Ingest.Filename)
	assert.Equal(t, 25, cfg.Compact.MaxCidrs)
	assert.Equal(t, api.OnErrorAbort, cfg.Compact.OnError)
	assert.Equal(t, api.FormatTree, cfg.Write.Format)
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	valid := Options{MaxCidrs: 40, OnError: api.OnErrorSkip, Format: api.FormatFlat}

	opts := valid
	opts.MaxCidrs = -1
	_, err := ParseConfig(&opts)
	assert.ErrorContains(t, err, "maxCidrs")

	opts = valid
	opts.OnError = "retry"
	_, err = ParseConfig(&opts)
	assert.ErrorContains(t, err, "onError")

	opts = valid
	opts.Format = "xml"
	_, err = ParseConfig(&opts)
	assert.ErrorContains(t, err, "format")
}
