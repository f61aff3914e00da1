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
	"strconv"
	"time"

	c "github.com/codenotary/ratings/cmd/helper"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
)

const defaultNbEmployees = 10

// seedOrigin is the earliest generated review date; dates spread over ten years.
var seedOrigin = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

func (cl *commandline) seed(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "seed [n]",
		Short: fmt.Sprintf("Append the (optional) number of sample employee ratings (%d by default)", defaultNbEmployees),
		Example: `  ratings seed
  ratings seed 50 --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nbEmployees, err := parseNbEmployees(args)
			if err != nil {
				cl.quit(err)
				return nil
			}
			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d sample employee rating(s) will be appended to %s.\n", nbEmployees, cl.fileName())
			if !yes {
				fmt.Fprint(out, "Are you sure you want to proceed? [y/N]: ")
				selected, err := c.NewTerminalReader(cmd.InOrStdin()).ReadFromTerminalYN("N")
				if err != nil {
					cl.quit(err)
					return nil
				}
				if selected != "y" {
					fmt.Fprintln(out, "Canceled")
					return nil
				}
			}

			employees, err := cl.load(true)
			if err != nil {
				cl.quit(err)
				return nil
			}
			employees = append(employees, generateEmployees(cl.faker, nbEmployees)...)
			if err := cl.gateway.Save(cl.fileName(), employees); err != nil {
				cl.quit(err)
				return nil
			}
			fmt.Fprintf(out, "OK: %d employee rating(s) were written, %s now holds %d\n", nbEmployees, cl.fileName(), len(employees))
			return nil
		},
	}
	ccmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	cmd.AddCommand(ccmd)
}

func parseNbEmployees(args []string) (int, error) {
	if len(args) == 0 {
		return defaultNbEmployees, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("number of employees must be a positive integer, got %q", args[0])
	}
	return n, nil
}

// generateEmployees draws n valid employees. Names the model rejects, such
// as those with an apostrophe, are drawn again.
func generateEmployees(f faker.Faker, n int) []*model.Employee {
	p := f.Person()
	employees := make([]*model.Employee, 0, n)
	for len(employees) < n {
		date := seedOrigin.AddDate(0, 0, f.IntBetween(0, 3650)).Format(model.ReviewDateLayout)
		rating := f.IntBetween(model.MinReviewRating, model.MaxReviewRating)
		e, err := model.NewEmployee(p.FirstName(), p.LastName(), date, rating)
		if err != nil {
			continue
		}
		employees = append(employees, e)
	}
	return employees
}
