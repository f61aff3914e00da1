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

// Package persistence moves employee records between memory and the JSON
// ratings file.
//
// The file is a JSON array of flat objects:
//
//	[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]
//
// Load reads the whole file, Save rewrites it. Neither keeps a reference to the
// caller's slice, and failures come back as errors carrying a summary message
// and the technical cause.
package persistence

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/codenotary/ratings/pkg/errors"
	"github.com/codenotary/ratings/pkg/logger"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/spf13/afero"
)

const (
	ErrFileMustExist   = "file must exist before running"
	ErrNonSpecific     = "non-specific error"
	ErrNotSerializable = "data is not valid JSON-representable"
	ErrCheckPermission = "check read/write permission"
)

func init() {
	errors.CodeMap[ErrFileMustExist] = errors.CodFileAccess
	errors.CodeMap[ErrNonSpecific] = errors.CodPersistence
	errors.CodeMap[ErrNotSerializable] = errors.CodSerialization
	errors.CodeMap[ErrCheckPermission] = errors.CodPermissionDenied
}

// Gateway reads and writes ratings files.
type Gateway struct {
	fs       afero.Fs
	log      logger.Logger
	fileMode os.FileMode
	indent   string
}

// New returns a gateway configured with opts.
func New(opts *Options) *Gateway {
	if opts == nil {
		opts = DefaultOptions()
	}
	g := &Gateway{
		fs:       opts.Fs,
		log:      opts.Logger,
		fileMode: opts.FileMode,
		indent:   opts.Indent,
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.log == nil {
		g.log = logger.NewNopLogger()
	}
	if g.fileMode == 0 {
		g.fileMode = 0644
	}
	return g
}

// Load appends the employees stored at path to employees and returns the
// result. On any failure employees is returned as it was passed in.
func (g *Gateway) Load(path string, employees []*model.Employee) ([]*model.Employee, error) {
	loaded, err := g.read(path)
	if err != nil {
		g.log.Errorf("unable to load %s: %v", path, err)
		return employees, err
	}
	g.log.Debugf("loaded %d employee(s) from %s", len(loaded), path)
	return append(employees, loaded...), nil
}

func (g *Gateway) read(path string) ([]*model.Employee, error) {
	f, err := g.fs.Open(path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, ErrFileMustExist)
		}
		return nil, errors.Wrap(err, ErrNonSpecific)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, ErrNonSpecific)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, ErrNonSpecific)
	}
	if records == nil {
		return nil, errors.Wrap(fmt.Errorf("%s does not hold a JSON array", path), ErrNonSpecific)
	}

	loaded := make([]*model.Employee, 0, len(records))
	for i := range records {
		e, err := records[i].employee()
		if err != nil {
			return nil, errors.Wrap(fmt.Errorf("record %d: %w", i, err), ErrNonSpecific)
		}
		loaded = append(loaded, e)
	}
	return loaded, nil
}

// Save replaces the content of path with employees. The data is encoded
// before the file is opened, so an encoding failure leaves the file as it was.
func (g *Gateway) Save(path string, employees []*model.Employee) error {
	data, err := g.Encode(employees)
	if err != nil {
		g.log.Errorf("unable to encode employees: %v", err)
		return err
	}

	if err := g.write(path, data); err != nil {
		g.log.Errorf("unable to save %s: %v", path, err)
		return err
	}
	g.log.Infof("saved %d employee(s) to %s", len(employees), path)
	return nil
}

// Encode renders employees in the ratings file format.
func (g *Gateway) Encode(employees []*model.Employee) ([]byte, error) {
	entries := make([]entry, 0, len(employees))
	for i, e := range employees {
		if e == nil {
			return nil, errors.Wrap(fmt.Errorf("employee %d is nil", i), ErrNotSerializable)
		}
		entries = append(entries, entryOf(e))
	}

	var data []byte
	var err error
	if g.indent != "" {
		data, err = json.MarshalIndent(entries, "", g.indent)
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return nil, errors.Wrap(err, ErrNotSerializable)
	}
	return data, nil
}

func (g *Gateway) write(path string, data []byte) (err error) {
	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, g.fileMode)
	if err != nil {
		if stdErrors.Is(err, fs.ErrPermission) {
			return errors.Wrap(err, ErrCheckPermission)
		}
		return errors.Wrap(err, ErrNonSpecific)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, ErrNonSpecific)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, ErrNonSpecific)
	}
	return nil
}

var defaultGateway = New(nil)

// Load reads path from the local filesystem with the default gateway.
func Load(path string, employees []*model.Employee) ([]*model.Employee, error) {
	return defaultGateway.Load(path, employees)
}

// Save writes path on the local filesystem with the default gateway.
func Save(path string, employees []*model.Employee) error {
	return defaultGateway.Save(path, employees)
}
