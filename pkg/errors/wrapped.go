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

type wrappedError struct {
	cause error
	msg   string
	code  Code
	stack string
}

// Wrap attaches a summary message to err. The code comes from CodeMap when
// the message is registered there, otherwise it is inherited from err.
func Wrap(err error, message string) *wrappedError {
	if err == nil {
		return nil
	}
	code := CodInternalError
	stack := ""
	if e, ok := err.(Error); ok {
		code = e.Code()
		stack = e.Stack()
	}
	if c, ok := CodeMap[message]; ok {
		code = c
	}
	if stack == "" {
		stack = string(debug.Stack())
	}
	return &wrappedError{
		cause: err,
		msg:   message,
		code:  code,
		stack: stack,
	}
}

func (w *wrappedError) Error() string {
	return w.msg + ": " + w.cause.Error()
}

func (w *wrappedError) Message() string {
	return w.msg
}

func (w *wrappedError) Cause() error {
	return w.cause
}

func (w *wrappedError) Unwrap() error {
	return w.cause
}

func (w *wrappedError) Code() Code {
	return w.code
}

func (w *wrappedError) Stack() string {
	return w.stack
}

func (w *wrappedError) WithCode(code Code) *wrappedError {
	w.code = code
	return w
}

func (e *wrappedError) Is(target error) bool {
	switch t := target.(type) {
	case *ratingsError:
		return compare(e, t)
	case *wrappedError:
		return compare(e, t)
	default:
		return e.Cause().Error() == target.Error()
	}
}
