/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmdtest captures what commands print on the process streams.
package cmdtest

import (
	"bytes"
	"io"
	"os"
)

// StdOutCollector redirects os.Stdout, or os.Stderr when CaptureStderr is
// set, into a pipe between Start and Stop.
type StdOutCollector struct {
	CaptureStderr bool

	real   *os.File
	reader *os.File
	writer *os.File
	done   chan result
}

type result struct {
	out string
	err error
}

// Start swaps the stream for the write end of a pipe.
func (c *StdOutCollector) Start() error {
	var err error
	c.reader, c.writer, err = os.Pipe()
	if err != nil {
		return err
	}

	if c.CaptureStderr {
		c.real, os.Stderr = os.Stderr, c.writer
	} else {
		c.real, os.Stdout = os.Stdout, c.writer
	}

	// drained concurrently so a large output cannot fill the pipe
	c.done = make(chan result, 1)
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, c.reader)
		c.reader.Close()
		c.done <- result{out: buf.String(), err: err}
	}()
	return nil
}

// Stop restores the stream and returns everything written since Start.
func (c *StdOutCollector) Stop() (string, error) {
	c.writer.Close()
	if c.CaptureStderr {
		os.Stderr = c.real
	} else {
		os.Stdout = c.real
	}
	r := <-c.done
	return r.out, r.err
}

// Collect runs fn with the stream captured.
func (c *StdOutCollector) Collect(fn func()) (string, error) {
	if err := c.Start(); err != nil {
		return "", err
	}
	fn()
	return c.Stop()
}
