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

// Package model holds the validated employee rating records.
//
// Fields are unexported and only change through setters that reject invalid
// input, leaving the previous value in place. Constructors go through the same
// setters, so an invalid record cannot be built.
package model

import (
	"fmt"
	"unicode"

	"github.com/codenotary/ratings/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ErrInvalidName   = "name must not contain numeric or non-alphabetic characters"
	ErrInvalidDate   = "date must be in YYYY-MM-DD format"
	ErrInvalidRating = "rating must be an integer 1-5"
)

func init() {
	errors.CodeMap[ErrInvalidName] = errors.CodValidation
	errors.CodeMap[ErrInvalidDate] = errors.CodValidation
	errors.CodeMap[ErrInvalidRating] = errors.CodValidation
}

// Person is the identity part of a record.
type Person struct {
	firstName string
	lastName  string
}

// NewPerson builds a Person, validating both names.
func NewPerson(firstName, lastName string) (*Person, error) {
	p := &Person{}
	if err := p.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := p.SetLastName(lastName); err != nil {
		return nil, err
	}
	return p, nil
}

// FirstName returns the first name in title case.
func (p *Person) FirstName() string {
	return titleCase(p.firstName)
}

// SetFirstName stores value verbatim if it is alphabetic or empty.
func (p *Person) SetFirstName(value string) error {
	if !isName(value) {
		return errors.Wrap(fmt.Errorf("invalid first name %q", value), ErrInvalidName)
	}
	p.firstName = value
	return nil
}

// LastName returns the last name in title case.
func (p *Person) LastName() string {
	return titleCase(p.lastName)
}

// SetLastName stores value verbatim if it is alphabetic or empty.
func (p *Person) SetLastName(value string) error {
	if !isName(value) {
		return errors.Wrap(fmt.Errorf("invalid last name %q", value), ErrInvalidName)
	}
	p.lastName = value
	return nil
}

// String renders "First,Last".
func (p *Person) String() string {
	return p.FirstName() + "," + p.LastName()
}

func isName(value string) bool {
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.Und).String(s)
}
