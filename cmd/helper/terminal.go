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

package helper

import (
	"bufio"
	"io"
	"os"
	"strings"
)

type terminalReader struct {
	in *bufio.Reader
}

type TerminalReader interface {
	ReadFromTerminalYN(def string) (selected string, err error)
}

func NewTerminalReader(in io.Reader) *terminalReader {
	if in == nil {
		in = os.Stdin
	}
	return &terminalReader{in: bufio.NewReader(in)}
}

// ReadFromTerminalYN read terminal user input from a Yes No dialog. It returns y and n only with an explicit Yy or Nn input. If no input is submitted it returns default value. If the input is different from the expected one empty string is returned.
func (t *terminalReader) ReadFromTerminalYN(def string) (selected string, err error) {
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	u := strings.TrimSpace(strings.ToLower(line))
	if u == "" {
		u = strings.ToLower(def)
	}
	if u == "y" {
		return "y", nil
	}
	if u == "n" {
		return "n", nil
	}
	return "", nil
}
