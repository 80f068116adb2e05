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

package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/netobserv/cidr-compactor/pkg/api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type ingestFile struct {
	fileName string
}

// Ingest reads one CIDR record per line; blank lines are skipped. An empty
// file name reads standard input so the tool composes in shell pipelines.
func (r *ingestFile) Ingest(process ProcessFunction) error {
	var reader io.Reader
	if r.fileName == "" {
		log.Debugf("ingesting from stdin")
		reader = os.Stdin
	} else {
		file, err := os.Open(r.fileName)
		if err != nil {
			return errors.Wrap(err, "opening input file")
		}
		defer func() {
			_ = file.Close()
		}()
		reader = file
	}

	count := 0
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Debugf("%s", line)
		if err := process(line); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	log.Infof("ingested %d records", count)
	return nil
}

// NewIngestFile creates an ingester over the configured file, or over
// standard input when no file name is given.
func NewIngestFile(params api.IngestFile) (Ingester, error) {
	if params.Filename != "" {
		if _, err := os.Stat(params.Filename); err != nil {
			return nil, errors.Wrap(err, "input file not accessible")
		}
		log.Infof("input file name = %s", params.Filename)
	}
	return &ingestFile{fileName: params.Filename}, nil
}
