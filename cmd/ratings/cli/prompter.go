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

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter reads one line of user input after showing a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

type linerPrompter struct {
	state *liner.State
}

// NewLinerPrompter returns a Prompter with line editing and history.
func NewLinerPrompter() Prompter {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &linerPrompter{state: l}
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}

type readerPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderPrompter reads lines from in and writes prompts to out.
func NewReaderPrompter(in io.Reader, out io.Writer) Prompter {
	return &readerPrompter{in: bufio.NewReader(in), out: out}
}

func (p *readerPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *readerPrompter) Close() error {
	return nil
}

func isExit(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}
