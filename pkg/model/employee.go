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

package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/codenotary/ratings/pkg/errors"
)

const (
	// ReviewDateLayout is the only accepted review date layout.
	ReviewDateLayout = "2006-01-02"

	DefaultReviewDate   = "1900-01-01"
	DefaultReviewRating = 3

	MinReviewRating = 1
	MaxReviewRating = 5
)

// Employee is a Person with the outcome of a performance review.
type Employee struct {
	Person

	reviewDate   string
	reviewRating int
}

// DefaultEmployee returns an employee with empty names, review date 1900-01-01
// and rating 3.
func DefaultEmployee() *Employee {
	return &Employee{
		reviewDate:   DefaultReviewDate,
		reviewRating: DefaultReviewRating,
	}
}

// NewEmployee builds an Employee, running every value through its setter.
func NewEmployee(firstName, lastName, reviewDate string, reviewRating int) (*Employee, error) {
	e := DefaultEmployee()
	if err := e.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := e.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := e.SetReviewDate(reviewDate); err != nil {
		return nil, err
	}
	if err := e.SetReviewRating(reviewRating); err != nil {
		return nil, err
	}
	return e, nil
}

// ReviewDate returns the review date as stored.
func (e *Employee) ReviewDate() string {
	return e.reviewDate
}

// SetReviewDate accepts a real calendar date written as YYYY-MM-DD.
func (e *Employee) SetReviewDate(value string) error {
	t, err := time.Parse(ReviewDateLayout, value)
	if err != nil {
		return errors.Wrap(err, ErrInvalidDate)
	}
	if t.Format(ReviewDateLayout) != value {
		return errors.Wrap(fmt.Errorf("invalid review date %q", value), ErrInvalidDate)
	}
	e.reviewDate = value
	return nil
}

// ReviewRating returns the rating, always within 1..5.
func (e *Employee) ReviewRating() int {
	return e.reviewRating
}

// SetReviewRating accepts 1, 2, 3, 4 or 5.
func (e *Employee) SetReviewRating(value int) error {
	if value < MinReviewRating || value > MaxReviewRating {
		return errors.Wrap(fmt.Errorf("invalid review rating %d", value), ErrInvalidRating)
	}
	e.reviewRating = value
	return nil
}

// SetReviewRatingText parses user entered text before validating it.
func (e *Employee) SetReviewRatingText(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errors.Wrap(err, ErrInvalidRating)
	}
	return e.SetReviewRating(n)
}

// SetReviewRatingValue validates a decoded JSON value. Only integral numbers
// are accepted; strings, booleans and fractions are rejected.
func (e *Employee) SetReviewRatingValue(value interface{}) error {
	switch v := value.(type) {
	case int:
		return e.SetReviewRating(v)
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return errors.Wrap(fmt.Errorf("invalid review rating %d", v), ErrInvalidRating)
		}
		return e.SetReviewRating(int(v))
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return errors.Wrap(fmt.Errorf("invalid review rating %v", v), ErrInvalidRating)
		}
		return e.SetReviewRating(int(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return e.SetReviewRatingValue(n)
		}
		// 4.0 and 4e0 are integral too
		f, err := v.Float64()
		if err != nil {
			return errors.Wrap(err, ErrInvalidRating)
		}
		return e.SetReviewRatingValue(f)
	default:
		return errors.Wrap(fmt.Errorf("review rating has type %T", value), ErrInvalidRating)
	}
}

// String renders "First,Last,Date,Rating".
func (e *Employee) String() string {
	return fmt.Sprintf("%s,%s,%s,%d", e.FirstName(), e.LastName(), e.reviewDate, e.reviewRating)
}

// Equal compares the displayed values of both employees.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.FirstName() == other.FirstName() &&
		e.LastName() == other.LastName() &&
		e.reviewDate == other.reviewDate &&
		e.reviewRating == other.reviewRating
}
