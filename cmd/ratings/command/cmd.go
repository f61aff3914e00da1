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
	"github.com/codenotary/ratings/cmd/docs/man"
	c "github.com/codenotary/ratings/cmd/helper"
	"github.com/codenotary/ratings/cmd/version"
	"github.com/spf13/cobra"
)

func Execute(cmd *cobra.Command) error {
	return cmd.Execute()
}

func NewCommand() *cobra.Command {
	version.App = "ratings"

	cl := NewCommandLine()
	cmd, err := cl.NewCmd()
	if err != nil {
		c.QuitToStdErr(err)
	}

	// menu, show, add and seed
	cl.Register(cmd)
	// man file generator
	cmd.AddCommand(man.Generate(cmd, "ratings", "./cmd/docs/man/ratings"))
	cmd.AddCommand(version.VersionCmd())
	return cmd
}
