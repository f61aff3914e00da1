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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	c "github.com/codenotary/ratings/cmd/helper"
	"github.com/codenotary/ratings/cmd/ratings/cli"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func (cl *commandline) show(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the employee ratings stored in the ratings file",
		Aliases: []string{"s", "ls"},
		Example: `  ratings show
  ratings show --output plain
  ratings show -o json --file team.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := cl.load(false)
			if err != nil {
				cl.quit(err)
				return nil
			}
			if err := cl.printEmployees(cmd.OutOrStdout(), viper.GetString("output"), employees); err != nil {
				cl.quit(err)
			}
			return nil
		},
	}
	ccmd.Flags().StringP("output", "o", outputTable, "output format (table, plain, json)")
	if err := viper.BindPFlag("output", ccmd.Flags().Lookup("output")); err != nil {
		cl.quit(err)
	}
	cmd.AddCommand(ccmd)
}

func (cl *commandline) printEmployees(w io.Writer, output string, employees []*model.Employee) error {
	switch output {
	case outputTable:
		if len(employees) == 0 {
			fmt.Fprintln(w, "no employee ratings found")
			return nil
		}
		c.PrintTable(
			w,
			[]string{"First name", "Last name", "Review date", "Rating", "Label"},
			len(employees),
			func(i int) []string {
				e := employees[i]
				return []string{
					e.FirstName(),
					e.LastName(),
					e.ReviewDate(),
					strconv.Itoa(e.ReviewRating()),
					model.RatingLabel(e.ReviewRating()),
				}
			},
			fmt.Sprintf("%d employee(s) in %s", len(employees), cl.fileName()),
		)
	case outputPlain:
		for _, e := range employees {
			fmt.Fprintln(w, cli.FormatEmployee(e))
		}
	case outputJSON:
		data, err := cl.gateway.Encode(employees)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(w, buf.String())
	default:
		return fmt.Errorf("unknown output format %q, use %s, %s or %s", output, outputTable, outputPlain, outputJSON)
	}
	return nil
}
