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

import (
	"github.com/codenotary/ratings/cmd/ratings/cli"
	"github.com/spf13/cobra"
)

func (cl *commandline) menu(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:     "menu",
		Short:   "Start the interactive menu (default when no subcommand is given)",
		Aliases: []string{"m"},
		Args:    cobra.NoArgs,
		RunE:    cl.runMenu,
	}
	cmd.AddCommand(ccmd)
}

// runMenu closes the logger itself on failure: cobra skips PersistentPostRun
// when RunE returns an error.
func (cl *commandline) runMenu(cmd *cobra.Command, args []string) error {
	err := cli.Init(cl.gateway, cl.fileName(), cl.prompter, cmd.OutOrStdout()).Run()
	if err != nil {
		cl.log.Errorf("menu stopped: %v", err)
		cl.close(cmd, args)
	}
	return err
}
