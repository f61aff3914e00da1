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
	"github.com/codenotary/ratings/pkg/persistence"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputTable = "table"
	outputPlain = "plain"
	outputJSON  = "json"
)

func (cl *commandline) configureFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().StringVar(&cl.config.CfgFn, "config", "", "config file (default path are configs, /etc/ratings or $HOME. Default filename is ratings.toml)")
	cmd.PersistentFlags().StringP("file", "f", persistence.DefaultFileName, "employee ratings JSON file")
	cmd.PersistentFlags().String("log-file", "", "log file path, logs go to stderr when empty")
	cmd.PersistentFlags().String("log-level", "error", "log level (debug, info, warn, error)")

	if err := viper.BindPFlag("file", cmd.PersistentFlags().Lookup("file")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log-file", cmd.PersistentFlags().Lookup("log-file")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	viper.SetDefault("file", persistence.DefaultFileName)
	viper.SetDefault("log-file", "")
	viper.SetDefault("log-level", "error")
	viper.SetDefault("output", outputTable)
	return nil
}
