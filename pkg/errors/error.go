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

package errors

import (
	"runtime/debug"
)

// Every failure leaving the model or the persistence gateway implements Error.
//
// An error can be created with:
//
// errors.New
// errors.Wrap
//
// if !isAlpha(value) {
//    return errors.New(ErrInvalidName)
// }
//
// or
//
// data, err := os.ReadFile(path)
// if err != nil {
//    return nil, errors.Wrap(err, ErrNonSpecific)
// }
//
// Messages registered in CodeMap (usually inside an init function of the owning
// package) get their code without an inline WithCode call.
//
// func init() {
//    errors.CodeMap[ErrInvalidName] = errors.CodValidation
// }
//
// Message returns the human readable summary, Cause the underlying technical
// detail. Errors sharing a code other than CodInternalError compare equal under
// errors.Is, so callers can test against the sentinels declared in meta.go.
type Error interface {
	Error() string
	Message() string
	Cause() error
	Code() Code
	Stack() string
}

func New(message string) *ratingsError {
	c, ok := CodeMap[message]
	if !ok {
		c = CodInternalError
	}
	return &ratingsError{
		code:  c,
		msg:   message,
		stack: string(debug.Stack()),
	}
}

type ratingsError struct {
	code  Code
	msg   string
	stack string
}

func (f *ratingsError) Error() string {
	return f.msg
}

func (f *ratingsError) Message() string {
	return f.msg
}

func (f *ratingsError) Cause() error {
	return f
}

func (f *ratingsError) Code() Code {
	return f.code
}

func (f *ratingsError) Stack() string {
	return f.stack
}

func (e *ratingsError) WithCode(code Code) *ratingsError {
	e.code = code
	return e
}

func (e *ratingsError) Is(target error) bool {
	switch t := target.(type) {
	case *ratingsError:
		return compare(e, t)
	case *wrappedError:
		return compare(e, t)
	default:
		return e.Cause().Error() == target.Error()
	}
}

func compare(e Error, t Error) bool {
	if e.Code() != CodInternalError || t.Code() != CodInternalError {
		return e.Code() == t.Code()
	}
	return e.Message() == t.Message() && e.Cause().Error() == t.Cause().Error()
}

// Technical returns the technical detail carried by err, or an empty string
// when err is a bare summary with nothing underneath.
func Technical(err error) string {
	e, ok := err.(Error)
	if !ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	cause := e.Cause()
	if cause == nil {
		return ""
	}
	if _, self := cause.(*ratingsError); self && cause.Error() == e.Message() {
		return ""
	}
	return cause.Error()
}

// Summary returns the human readable part of err.
func Summary(err error) string {
	if e, ok := err.(Error); ok {
		return e.Message()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
