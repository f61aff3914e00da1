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
	stdErrors "errors"

	c "github.com/codenotary/ratings/cmd/helper"
	"github.com/codenotary/ratings/cmd/ratings/cli"
	"github.com/codenotary/ratings/pkg/errors"
	"github.com/codenotary/ratings/pkg/logger"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/codenotary/ratings/pkg/persistence"
	"github.com/jaswdr/faker"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Commandline ...
type Commandline interface {
	menu(cmd *cobra.Command)
	show(cmd *cobra.Command)
	add(cmd *cobra.Command)
	seed(cmd *cobra.Command)
	ConfigChain(post func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) (err error)
}

type commandline struct {
	config   c.Config
	fs       afero.Fs
	log      logger.Logger
	gateway  *persistence.Gateway
	prompter cli.Prompter
	faker    faker.Faker
	onError  func(msg interface{})
}

func NewCommandLine() *commandline {
	cl := &commandline{}
	cl.config.Name = "ratings"
	cl.fs = afero.NewOsFs()
	cl.faker = faker.New()
	return cl
}

func (cl *commandline) ConfigChain(post func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) (err error) {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err = cl.config.LoadConfig(cmd); err != nil {
			return err
		}
		// config is loaded, the file and logging settings are final
		level := logger.ParseLogLevel(viper.GetString("log-level"))
		if logFile := viper.GetString("log-file"); logFile != "" {
			if cl.log, _, err = logger.NewFileLoggerWithLevel("ratings ", logFile, level); err != nil {
				return err
			}
		} else {
			cl.log = logger.NewSimpleLoggerWithLevel("ratings", cmd.ErrOrStderr(), level)
		}
		cl.gateway = persistence.New(persistence.DefaultOptions().
			WithFs(cl.fs).
			WithLogger(cl.log))
		if post != nil {
			return post(cmd, args)
		}
		return nil
	}
}

func (cl *commandline) Register(rootCmd *cobra.Command) *cobra.Command {
	cl.menu(rootCmd)
	cl.show(rootCmd)
	cl.add(rootCmd)
	cl.seed(rootCmd)
	return rootCmd
}

func (cl *commandline) quit(msg interface{}) {
	if cl.onError == nil {
		if err, ok := msg.(error); ok {
			c.QuitWithUserError(err)
			return
		}
		c.QuitToStdErr(msg)
		return
	}
	cl.onError(msg)
}

func (cl *commandline) close(cmd *cobra.Command, args []string) {
	if cl.log == nil {
		return
	}
	err := cl.log.Close()
	cl.log = nil
	if err != nil {
		cl.quit(err)
	}
}

func (cl *commandline) fileName() string {
	return viper.GetString("file")
}

// load reads the configured ratings file. A missing file is an empty
// collection when allowMissing is set.
func (cl *commandline) load(allowMissing bool) ([]*model.Employee, error) {
	employees, err := cl.gateway.Load(cl.fileName(), nil)
	if err != nil && allowMissing && stdErrors.Is(err, errors.ErrFileAccess) {
		return nil, nil
	}
	return employees, err
}
