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
	"fmt"
	"io"
	"os"
	"strings"

	c "github.com/codenotary/ratings/cmd/helper"
	"github.com/codenotary/ratings/pkg/errors"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/fatih/color"
)

const Menu = `
---- Employee Ratings ------------------------------
  Select from the following menu:
    1. Show current employee rating data.
    2. Enter new employee rating data.
    3. Save data to a file.
    4. Exit the program.
--------------------------------------------------
`

const (
	MsgInvalidChoice = "Please, choose only 1, 2, 3, or 4"
	MsgInvalidInput  = "That value is not the correct type of data!"
)

const separator = "--------------------------------------------------"

// Store is the persistence the menu loads from and saves to.
type Store interface {
	Load(path string, employees []*model.Employee) ([]*model.Employee, error)
	Save(path string, employees []*model.Employee) error
}

type Cli interface {
	Run() error
	Employees() []*model.Employee
}

type cli struct {
	store     Store
	fileName  string
	prompter  Prompter
	out       io.Writer
	errColor  *color.Color
	employees []*model.Employee
}

// Init returns the interactive menu working on fileName through store.
// A nil prompter reads from the terminal, a nil out writes to stdout.
func Init(store Store, fileName string, prompter Prompter, out io.Writer) Cli {
	if prompter == nil {
		prompter = NewLinerPrompter()
	}
	if out == nil {
		out = os.Stdout
	}
	return &cli{
		store:    store,
		fileName: fileName,
		prompter: prompter,
		out:      out,
		errColor: color.New(color.FgRed),
	}
}

func (cli *cli) Employees() []*model.Employee {
	return cli.employees
}

// Run loads the ratings file and serves the menu until the user exits.
func (cli *cli) Run() error {
	defer cli.prompter.Close()

	employees, err := cli.store.Load(cli.fileName, cli.employees)
	if err != nil {
		cli.outputError(errors.Summary(err), err)
	}
	cli.employees = employees

	for {
		fmt.Fprint(cli.out, Menu)

		choice, err := cli.inputMenuChoice()
		if err != nil {
			if isExit(err) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			cli.outputEmployeeData()
		case "2":
			added, err := cli.inputEmployeeData()
			if err != nil {
				if isExit(err) {
					return nil
				}
				return err
			}
			if added {
				cli.outputEmployeeData()
			}
		case "3":
			cli.saveEmployeeData()
		case "4":
			return nil
		}
	}
}

func (cli *cli) inputMenuChoice() (string, error) {
	choice, err := cli.prompter.Prompt("Enter your menu choice number: ")
	if err != nil {
		return "", err
	}
	choice = strings.TrimSpace(choice)
	switch choice {
	case "1", "2", "3", "4":
		return choice, nil
	}
	cli.outputError(MsgInvalidChoice, nil)
	return "0", nil
}

func (cli *cli) outputEmployeeData() {
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, separator)
	for _, e := range cli.employees {
		fmt.Fprintln(cli.out, FormatEmployee(e))
	}
	fmt.Fprintln(cli.out, separator)
	fmt.Fprintln(cli.out)
}

// FormatEmployee renders the menu line of a single employee.
func FormatEmployee(e *model.Employee) string {
	return fmt.Sprintf(" %s %s is rated as %d (%s)",
		e.FirstName(), e.LastName(), e.ReviewRating(), model.RatingLabel(e.ReviewRating()))
}

// inputEmployeeData asks for one employee and appends it when every value is
// accepted. A rejected value is reported and nothing is appended.
func (cli *cli) inputEmployeeData() (bool, error) {
	e := model.DefaultEmployee()

	fields := []struct {
		prompt string
		set    func(string) error
	}{
		{"What is the employee's first name? ", e.SetFirstName},
		{"What is the employee's last name? ", e.SetLastName},
		{"What is their review date? ", e.SetReviewDate},
		{"What is their review rating? ", e.SetReviewRatingText},
	}

	for _, f := range fields {
		value, err := cli.prompter.Prompt(f.prompt)
		if err != nil {
			return false, err
		}
		if err := f.set(strings.TrimSpace(value)); err != nil {
			c.PrintErrorDetail(cli.out, cli.errColor.Sprint(MsgInvalidInput), err.Error())
			return false, nil
		}
	}

	cli.employees = append(cli.employees, e)
	return true, nil
}

func (cli *cli) saveEmployeeData() {
	if err := cli.store.Save(cli.fileName, cli.employees); err != nil {
		cli.outputError(errors.Summary(err), err)
		return
	}
	fmt.Fprintf(cli.out, "Data was saved to the %s file.\n", cli.fileName)
}

func (cli *cli) outputError(message string, err error) {
	c.PrintError(cli.out, cli.errColor.Sprint(message), err)
}
