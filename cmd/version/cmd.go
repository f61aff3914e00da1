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
package version

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags at link time.
var (
	App     string
	Version string
	Commit  string
	BuiltBy string
	// BuiltAt is the build time as unix seconds.
	BuiltAt string
)

// Info is the build information of the running binary.
type Info struct {
	App     string `json:"app"`
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	BuiltBy string `json:"builtBy,omitempty"`
	BuiltAt string `json:"builtAt,omitempty"`
}

// Current collects the link time variables. BuiltAt is rendered as an
// RFC1123 UTC date and dropped when it is not a unix timestamp.
func Current() Info {
	info := Info{App: App, Version: Version, Commit: Commit, BuiltBy: BuiltBy}
	if BuiltAt != "" {
		if i, err := strconv.ParseInt(BuiltAt, 10, 64); err == nil {
			info.BuiltAt = time.Unix(i, 0).UTC().Format(time.RFC1123)
		}
	}
	return info
}

func (i Info) String() string {
	if i.App == "" || i.Version == "" {
		return "no version info available"
	}
	const labelWidth = 8
	lines := []string{i.App + " " + i.Version}
	for _, f := range []struct{ label, value string }{
		{"Commit", i.Commit},
		{"Built by", i.BuiltBy},
		{"Built at", i.BuiltAt},
	} {
		if f.value != "" {
			lines = append(lines, fmt.Sprintf("%-*s: %s", labelWidth, f.label, f.value))
		}
	}
	return strings.Join(lines, "\n")
}

// VersionCmd returns the version command, plain text or --json.
func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Show the %s version", App),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			info := Current()
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), info)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
	cmd.Flags().Bool("json", false, "print the build information as JSON")
	return cmd
}

// VersionStr formats and returns the version string
func VersionStr() string {
	return Current().String()
}
