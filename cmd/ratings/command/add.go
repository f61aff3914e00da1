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
	"fmt"

	"github.com/codenotary/ratings/cmd/ratings/cli"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/spf13/cobra"
)

func (cl *commandline) add(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:     "add FIRST LAST DATE RATING",
		Short:   "Append one employee rating to the ratings file",
		Long:    "Append one employee rating to the ratings file. DATE is YYYY-MM-DD and RATING an integer from 1 to 5. The file is created when missing.",
		Example: "  ratings add Ada Lovelace 2024-03-01 5",
		Aliases: []string{"a"},
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := model.DefaultEmployee()
			setters := []func(string) error{
				e.SetFirstName,
				e.SetLastName,
				e.SetReviewDate,
				e.SetReviewRatingText,
			}
			for i, set := range setters {
				if err := set(args[i]); err != nil {
					cl.quit(err)
					return nil
				}
			}

			employees, err := cl.load(true)
			if err != nil {
				cl.quit(err)
				return nil
			}
			employees = append(employees, e)
			if err := cl.gateway.Save(cl.fileName(), employees); err != nil {
				cl.quit(err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatEmployee(e))
			fmt.Fprintf(cmd.OutOrStdout(), "Data was saved to the %s file.\n", cl.fileName())
			return nil
		},
	}
	cmd.AddCommand(ccmd)
}
