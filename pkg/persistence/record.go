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
	"fmt"

	"github.com/codenotary/ratings/pkg/model"
	"github.com/go-playground/validator/v10"
)

const (
	keyFirstName    = "FirstName"
	keyLastName     = "LastName"
	keyReviewDate   = "ReviewDate"
	keyReviewRating = "ReviewRating"
)

var validate = validator.New()

// entry is the flat shape written for every employee.
type entry struct {
	FirstName    string `json:"FirstName"`
	LastName     string `json:"LastName"`
	ReviewDate   string `json:"ReviewDate"`
	ReviewRating int    `json:"ReviewRating"`
}

func entryOf(e *model.Employee) entry {
	return entry{
		FirstName:    e.FirstName(),
		LastName:     e.LastName(),
		ReviewDate:   e.ReviewDate(),
		ReviewRating: e.ReviewRating(),
	}
}

// record is one element read back from the file. Keys are matched exactly,
// unlike the case-insensitive matching encoding/json does on struct fields.
type record struct {
	FirstName    *string          `validate:"required"`
	LastName     *string          `validate:"required"`
	ReviewDate   *string          `validate:"required"`
	ReviewRating *json.RawMessage `validate:"required"`
}

func (r *record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("record is null")
	}

	targets := []struct {
		key string
		dst interface{}
	}{
		{keyFirstName, &r.FirstName},
		{keyLastName, &r.LastName},
		{keyReviewDate, &r.ReviewDate},
		{keyReviewRating, &r.ReviewRating},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return fmt.Errorf("%s: %w", t.key, err)
		}
	}
	return nil
}

// employee checks every key is present, then assigns the values through the
// validating setters.
func (r *record) employee() (*model.Employee, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	var rating interface{}
	dec := json.NewDecoder(bytes.NewReader(*r.ReviewRating))
	dec.UseNumber()
	if err := dec.Decode(&rating); err != nil {
		return nil, err
	}

	e := model.DefaultEmployee()
	if err := e.SetFirstName(*r.FirstName); err != nil {
		return nil, err
	}
	if err := e.SetLastName(*r.LastName); err != nil {
		return nil, err
	}
	if err := e.SetReviewDate(*r.ReviewDate); err != nil {
		return nil, err
	}
	if err := e.SetReviewRatingValue(rating); err != nil {
		return nil, err
	}
	return e, nil
}
