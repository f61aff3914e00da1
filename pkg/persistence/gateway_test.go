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
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/codenotary/ratings/pkg/errors"
	"github.com/codenotary/ratings/pkg/logger"
	"github.com/codenotary/ratings/pkg/model"
	"github.com/jaswdr/faker"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const fileName = "EmployeeRatings.json"

type faultyFs struct {
	afero.Fs
	err error
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	return nil, f.err
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return nil, f.err
}

func newMemGateway(t *testing.T, fs afero.Fs) (*Gateway, *bytes.Buffer) {
	var logs bytes.Buffer
	opts := DefaultOptions().
		WithFs(fs).
		WithLogger(logger.NewSimpleLoggerWithLevel("ratings", &logs, logger.LogDebug))
	return New(opts), &logs
}

func mustEmployee(t *testing.T, first, last, date string, rating int) *model.Employee {
	e, err := model.NewEmployee(first, last, date, rating)
	require.NoError(t, err)
	return e
}

func TestLoadValid(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]`
	require.NoError(t, afero.WriteFile(fs, fileName, []byte(data), 0644))

	g, logs := newMemGateway(t, fs)
	employees, err := g.Load(fileName, nil)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "John", employees[0].FirstName())
	require.Equal(t, "Doe", employees[0].LastName())
	require.Equal(t, "2024-12-09", employees[0].ReviewDate())
	require.Equal(t, 4, employees[0].ReviewRating())
	require.Contains(t, logs.String(), "loaded 1 employee(s)")
}

func TestLoadIntegralFloatRating(t *testing.T) {
	for _, rating := range []string{"4.0", "4e0", "4.00"} {
		fs := afero.NewMemMapFs()
		data := `[{"FirstName":"John","LastName":"Doe","ReviewDate":"2024-12-09","ReviewRating":` + rating + `}]`
		require.NoError(t, afero.WriteFile(fs, fileName, []byte(data), 0644))

		g, _ := newMemGateway(t, fs)
		employees, err := g.Load(fileName, nil)
		require.NoError(t, err, rating)
		require.Len(t, employees, 1, rating)
		require.Equal(t, 4, employees[0].ReviewRating(), rating)
	}

	fs := afero.NewMemMapFs()
	data := `[{"FirstName":"John","LastName":"Doe","ReviewDate":"2024-12-09","ReviewRating":4.5}]`
	require.NoError(t, afero.WriteFile(fs, fileName, []byte(data), 0644))
	g, _ := newMemGateway(t, fs)
	_, err := g.Load(fileName, nil)
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestLoadAppendsInFileOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `[
		{"FirstName": "jane", "LastName": "roe", "ReviewDate": "2024-01-02", "ReviewRating": 5},
		{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-01-01", "ReviewRating": 1},
		{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-01-01", "ReviewRating": 1}
	]`
	require.NoError(t, afero.WriteFile(fs, fileName, []byte(data), 0644))

	g, _ := newMemGateway(t, fs)
	existing := []*model.Employee{mustEmployee(t, "Ann", "Lee", "2023-05-05", 3)}
	employees, err := g.Load(fileName, existing)
	require.NoError(t, err)
	require.Len(t, employees, 4)
	require.Equal(t, "Ann,Lee,2023-05-05,3", employees[0].String())
	require.Equal(t, "Jane,Roe,2024-01-02,5", employees[1].String())
	require.Equal(t, "John,Doe,2024-01-01,1", employees[2].String())
	require.True(t, employees[2].Equal(employees[3]))
}

func TestLoadEmptyArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, fileName, []byte(`[]`), 0644))

	g, _ := newMemGateway(t, fs)
	employees, err := g.Load(fileName, nil)
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestLoadMissingFile(t *testing.T) {
	g, logs := newMemGateway(t, afero.NewMemMapFs())
	existing := []*model.Employee{mustEmployee(t, "Ann", "Lee", "2023-05-05", 3)}

	employees, err := g.Load("non_existing_file.json", existing)
	require.ErrorIs(t, err, errors.ErrFileAccess)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, ErrFileMustExist, errors.Summary(err))
	require.NotEmpty(t, errors.Technical(err))
	require.Equal(t, existing, employees)
	require.Contains(t, logs.String(), "ERROR: unable to load non_existing_file.json")

	employees, err = g.Load("non_existing_file.json", nil)
	require.ErrorIs(t, err, errors.ErrFileAccess)
	require.Empty(t, employees)
}

func TestLoadReadFault(t *testing.T) {
	g, _ := newMemGateway(t, &faultyFs{Fs: afero.NewMemMapFs(), err: stdErrors.New("Unknown error")})

	employees, err := g.Load(fileName, nil)
	require.ErrorIs(t, err, errors.ErrPersistence)
	require.False(t, stdErrors.Is(err, errors.ErrFileAccess))
	require.Equal(t, ErrNonSpecific, errors.Summary(err))
	require.Equal(t, "Unknown error", errors.Technical(err))
	require.Empty(t, employees)
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		name       string
		data       string
		validation bool
	}{
		{"not json", `[{"FirstName": "John",`, false},
		{"empty file", ``, false},
		{"object instead of array", `{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}`, false},
		{"null document", `null`, false},
		{"null element", `[null]`, false},
		{"scalar element", `[42]`, false},
		{"missing key", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09"}]`, false},
		{"null value", `[{"FirstName": null, "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]`, false},
		{"key case differs", `[{"firstname": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]`, false},
		{"name is a number", `[{"FirstName": 7, "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]`, false},
		{"name with digits", `[{"FirstName": "John1", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4}]`, true},
		{"bad date layout", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024/12/09", "ReviewRating": 4}]`, true},
		{"rating out of range", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 6}]`, true},
		{"rating as text", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": "4"}]`, true},
		{"fractional rating", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4.5}]`, true},
		{"second record invalid", `[{"FirstName": "John", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 4},
			{"FirstName": "Jane", "LastName": "Doe", "ReviewDate": "2024-12-09", "ReviewRating": 0}]`, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, fileName, []byte(c.data), 0644))
			g, _ := newMemGateway(t, fs)

			existing := []*model.Employee{mustEmployee(t, "Ann", "Lee", "2023-05-05", 3)}
			employees, err := g.Load(fileName, existing)
			require.ErrorIs(t, err, errors.ErrPersistence)
			require.Equal(t, ErrNonSpecific, errors.Summary(err))
			require.Equal(t, c.validation, stdErrors.Is(err, errors.ErrValidation))
			require.Len(t, employees, 1)
			require.Same(t, existing[0], employees[0])
		})
	}
}

func TestSaveWritesFlatRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, logs := newMemGateway(t, fs)

	employees := []*model.Employee{mustEmployee(t, "john", "DOE", "2024-12-09", 4)}
	require.NoError(t, g.Save(fileName, employees))
	require.Contains(t, logs.String(), "saved 1 employee(s)")

	data, err := afero.ReadFile(fs, fileName)
	require.NoError(t, err)

	var written []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &written))
	require.Len(t, written, 1)
	require.Equal(t, map[string]interface{}{
		"FirstName":    "John",
		"LastName":     "Doe",
		"ReviewDate":   "2024-12-09",
		"ReviewRating": float64(4),
	}, written[0])
}

func TestSaveEmptyCollection(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, _ := newMemGateway(t, fs)

	require.NoError(t, g.Save(fileName, nil))
	data, err := afero.ReadFile(fs, fileName)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, _ := newMemGateway(t, fs)

	require.NoError(t, g.Save(fileName, []*model.Employee{
		mustEmployee(t, "John", "Doe", "2024-12-09", 4),
		mustEmployee(t, "Jane", "Doe", "2024-12-10", 5),
	}))
	require.NoError(t, g.Save(fileName, []*model.Employee{
		mustEmployee(t, "Ann", "Lee", "2023-05-05", 3),
	}))

	employees, err := g.Load(fileName, nil)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "Ann,Lee,2023-05-05,3", employees[0].String())
}

func TestSaveIndent(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := New(DefaultOptions().WithFs(fs).WithLogger(logger.NewNopLogger()).WithIndent("  "))

	require.NoError(t, g.Save(fileName, []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4)}))
	data, err := afero.ReadFile(fs, fileName)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"FirstName\": \"John\""))
}

func TestSaveNilElement(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, fileName, []byte(`[]`), 0644))
	g, _ := newMemGateway(t, fs)

	err := g.Save(fileName, []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4), nil})
	require.ErrorIs(t, err, errors.ErrSerialization)
	require.Equal(t, ErrNotSerializable, errors.Summary(err))

	data, err := afero.ReadFile(fs, fileName)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestSavePermissionDenied(t *testing.T) {
	base := afero.NewMemMapFs()
	original := `[{"FirstName":"Ann","LastName":"Lee","ReviewDate":"2023-05-05","ReviewRating":3}]`
	require.NoError(t, afero.WriteFile(base, fileName, []byte(original), 0644))
	g, _ := newMemGateway(t, afero.NewReadOnlyFs(base))

	err := g.Save(fileName, []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4)})
	require.ErrorIs(t, err, errors.ErrPermission)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Equal(t, ErrCheckPermission, errors.Summary(err))

	data, err := afero.ReadFile(base, fileName)
	require.NoError(t, err)
	require.Equal(t, original, string(data))
}

func TestSaveGenericFault(t *testing.T) {
	g, _ := newMemGateway(t, &faultyFs{Fs: afero.NewMemMapFs(), err: stdErrors.New("Unknown error")})

	err := g.Save(fileName, []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4)})
	require.ErrorIs(t, err, errors.ErrPersistence)
	require.False(t, stdErrors.Is(err, errors.ErrPermission))
	require.Equal(t, "Unknown error", errors.Technical(err))
}

func TestRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, _ := newMemGateway(t, fs)

	f := faker.NewWithSeed(rand.NewSource(42))
	origin := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	var employees []*model.Employee
	for len(employees) < 50 {
		date := origin.AddDate(0, 0, f.IntBetween(0, 15000)).Format(model.ReviewDateLayout)
		e, err := model.NewEmployee(f.Person().FirstName(), f.Person().LastName(), date, f.IntBetween(model.MinReviewRating, model.MaxReviewRating))
		if err != nil {
			continue
		}
		employees = append(employees, e)
	}

	require.NoError(t, g.Save(fileName, employees))
	loaded, err := g.Load(fileName, nil)
	require.NoError(t, err)
	require.Len(t, loaded, len(employees))
	for i := range employees {
		require.True(t, employees[i].Equal(loaded[i]), "%s != %s", employees[i], loaded[i])
	}
}

func TestLoadSaveOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	employees := []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4)}

	require.NoError(t, Save(path, employees))
	loaded, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.True(t, employees[0].Equal(loaded[0]))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm()&0644)
}

func TestSaveUnwritableOnDisk(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	original := []byte(`[]`)
	require.NoError(t, os.WriteFile(path, original, 0444))

	err := Save(path, []*model.Employee{mustEmployee(t, "John", "Doe", "2024-12-09", 4)})
	require.ErrorIs(t, err, errors.ErrPermission)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, data)
}

func TestLoadDirectory(t *testing.T) {
	employees, err := Load(t.TempDir(), nil)
	require.ErrorIs(t, err, errors.ErrPersistence)
	require.Empty(t, employees)
}
