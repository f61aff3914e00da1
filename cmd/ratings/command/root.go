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
package ratings

import "github.com/spf13/cobra"

func (cl *commandline) NewCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "ratings",
		Short: "Collect, review and store employee performance ratings",
		Long: `Collect, review and store employee performance ratings.

Without a subcommand the interactive menu is started.

Environment variables:
  RATINGS_FILE=EmployeeRatings.json
  RATINGS_LOG_FILE=
  RATINGS_LOG_LEVEL=error
  RATINGS_OUTPUT=table`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cl.ConfigChain(nil),
		PersistentPostRun: cl.close,
		RunE:              cl.runMenu,
	}

	if err := cl.configureFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
