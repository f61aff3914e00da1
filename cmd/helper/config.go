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

package helper

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config cmd options
type Config struct {
	Name  string
	CfgFn string
}

// Init initializes config. An explicit config file must be readable, the
// search paths are optional.
func (c *Config) Init(name string) error {
	if c.CfgFn != "" {
		viper.SetConfigFile(c.CfgFn)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath("configs")
		if runtime.GOOS != "windows" {
			viper.AddConfigPath("/etc/" + name)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(name)
	}
	viper.SetEnvPrefix(strings.ToUpper(name))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		c.CfgFn = viper.ConfigFileUsed()
		return nil
	}
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && c.CfgFn == "" {
		return nil
	}
	return fmt.Errorf("unable to read config file %s: %w", c.CfgFn, err)
}

// LoadConfig picks up the --config flag of cmd, if any, and initializes viper.
func (c *Config) LoadConfig(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		c.CfgFn = f.Value.String()
	}
	return c.Init(c.Name)
}
