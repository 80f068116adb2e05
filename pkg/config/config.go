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
	"fmt"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/sirupsen/logrus"
)

// Options holds the raw command line / environment values.
type Options struct {
	Input    string
	MaxCidrs int
	OnError  string
	Format   string
	Metrics  Metrics
	Profile  Profile
}

type Metrics struct {
	Address string
	Port    int
}

type Profile struct {
	Port int
}

// ConfigFileStruct is the validated stage configuration the pipeline runs on.
type ConfigFileStruct struct {
	Ingest  api.IngestFile
	Compact api.Compact
	Write   api.WriteStdout
}

// ParseConfig validates the options and maps them onto the stage parameters.
func ParseConfig(opts *Options) (ConfigFileStruct, error) {
	logrus.Debugf("config options = %+v", opts)

	if opts.MaxCidrs < 0 {
		return ConfigFileStruct{}, fmt.Errorf("maxCidrs must not be negative, got %d", opts.MaxCidrs)
	}
	switch opts.OnError {
	case api.OnErrorSkip, api.OnErrorAbort:
	default:
		return ConfigFileStruct{}, fmt.Errorf("unknown onError policy %q (want %s or %s)",
			opts.OnError, api.OnErrorSkip, api.OnErrorAbort)
	}
	switch opts.Format {
	case api.FormatFlat, api.FormatTree:
	default:
		return ConfigFileStruct{}, fmt.Errorf("unknown format %q (want %s or %s)",
			opts.Format, api.FormatFlat, api.FormatTree)
	}

	return ConfigFileStruct{
		Ingest:  api.IngestFile{Filename: opts.Input},
		Compact: api.Compact{MaxCidrs: opts.MaxCidrs, OnError: opts.OnError},
		Write:   api.WriteStdout{Format: opts.Format},
	}, nil
}
