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
	"fmt"
	"io"
	"os"

	"github.com/codenotary/ratings/pkg/errors"
)

var osexit = os.Exit

// TechnicalHeader introduces the technical part of an error report
const TechnicalHeader = "-- Technical Error Message --"

// QuitToStdErr prints an error on stderr and closes
func QuitToStdErr(msg interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	osexit(1)
}

// QuitWithUserError prints the summary and technical detail of err, then closes
func QuitWithUserError(err error) {
	PrintError(os.Stderr, errors.Summary(err), err)
	osexit(1)
}

func OverrideQuitter(quitter func(int)) {
	osexit = quitter
}

// PrintError writes message and, when err carries one, its technical detail.
func PrintError(w io.Writer, message string, err error) {
	if err == nil {
		PrintErrorDetail(w, message, "")
		return
	}
	PrintErrorDetail(w, message, errors.Technical(err))
}

// PrintErrorDetail writes message followed by detail under the technical header.
func PrintErrorDetail(w io.Writer, message string, detail string) {
	fmt.Fprintln(w, message)
	if detail != "" && detail != message {
		fmt.Fprintln(w, TechnicalHeader)
		fmt.Fprintln(w, detail)
	}
}
