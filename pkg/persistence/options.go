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

package persistence

import (
	"os"

	"github.com/codenotary/ratings/pkg/logger"
	"github.com/spf13/afero"
)

// DefaultFileName is the ratings file used when none is configured
const DefaultFileName = "EmployeeRatings.json"

// Options gateway options
type Options struct {
	Fs       afero.Fs      // Filesystem the ratings file lives on
	Logger   logger.Logger // Logger for load and save outcomes
	FileMode os.FileMode   // Permission bits used when save creates the file
	Indent   string        // Indentation of the saved JSON, empty for compact output
}

// DefaultOptions ...
func DefaultOptions() *Options {
	return &Options{
		Fs:       afero.NewOsFs(),
		Logger:   logger.NewSimpleLogger("ratings", os.Stderr),
		FileMode: 0644,
		Indent:   "",
	}
}

// WithFs sets the filesystem
func (o *Options) WithFs(fs afero.Fs) *Options {
	o.Fs = fs
	return o
}

// WithLogger sets the logger
func (o *Options) WithLogger(l logger.Logger) *Options {
	o.Logger = l
	return o
}

// WithFileMode sets the permission bits of newly created files
func (o *Options) WithFileMode(mode os.FileMode) *Options {
	o.FileMode = mode
	return o
}

// WithIndent sets the JSON indentation
func (o *Options) WithIndent(indent string) *Options {
	o.Indent = indent
	return o
}
