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

package errors_test

import (
	stdErrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/codenotary/ratings/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_RatingsError(t *testing.T) {
	cause := "cause error"
	err := errors.New(cause)

	require.Error(t, err)
	require.Equal(t, err.Error(), cause)
	require.Equal(t, err.Message(), cause)
	require.Equal(t, err.Code(), errors.CodInternalError)
	require.ErrorIs(t, err, err.Cause())
	require.NotEmpty(t, err.Stack())
}

func Test_WrappingError(t *testing.T) {
	cause := stdErrors.New("std error")
	wrappedMessage := "this is the message I want to show"
	wrappedError := errors.Wrap(cause, wrappedMessage)
	wrappedNilError := errors.Wrap(nil, "msg")

	require.Nil(t, wrappedNilError)

	require.Error(t, wrappedError)
	require.Equal(t, wrappedError.Error(), fmt.Sprintf("%s: %s", wrappedMessage, cause))
	require.Equal(t, wrappedError.Message(), wrappedMessage)
	require.Equal(t, wrappedError.Code(), errors.CodInternalError)
	require.Equal(t, wrappedError.Cause(), cause)
	require.NotEmpty(t, wrappedError.Stack())
}

func Test_WrappingKeepsCauseCode(t *testing.T) {
	err := errors.New("bad value").WithCode(errors.CodValidation)
	wrappedError := errors.Wrap(err, "could not load")

	require.Equal(t, errors.CodValidation, wrappedError.Code())
	require.Equal(t, err.Stack(), wrappedError.Stack())

	overridden := errors.Wrap(err, "could not load").WithCode(errors.CodPersistence)
	require.Equal(t, errors.CodPersistence, overridden.Code())
	require.ErrorIs(t, overridden, errors.ErrPersistence)
	require.ErrorIs(t, overridden, errors.ErrValidation)
}

func Test_WrappingWithKnownCode(t *testing.T) {
	const msg = "registered summary for test"
	errors.CodeMap[msg] = errors.CodSerialization
	defer delete(errors.CodeMap, msg)

	wrappedError := errors.Wrap(stdErrors.New("boom"), msg)
	require.Equal(t, errors.CodSerialization, wrappedError.Code())
	require.ErrorIs(t, wrappedError, errors.ErrSerialization)
	require.False(t, stdErrors.Is(wrappedError, errors.ErrPermission))

	plain := errors.New(msg)
	require.Equal(t, errors.CodSerialization, plain.Code())
}

func Test_ErrorIsComparesInternalByMessage(t *testing.T) {
	cause := "cause error"
	wrappedMessage := "this is the message I want to show"
	wrappedError := errors.Wrap(errors.New(cause), wrappedMessage)
	wrappedError2 := errors.Wrap(errors.New(cause), wrappedMessage)
	errStd := stdErrors.New("stdError")

	require.True(t, stdErrors.Is(wrappedError, wrappedError2))
	require.False(t, stdErrors.Is(wrappedError, errors.New("other")))
	require.False(t, stdErrors.Is(wrappedError, errStd))
	require.False(t, stdErrors.Is(errStd, wrappedError))
}

func Test_UnwrapReachesOSErrors(t *testing.T) {
	_, err := os.Open("/definitely/not/here.json")
	require.Error(t, err)

	wrappedError := errors.Wrap(err, "file must exist").WithCode(errors.CodFileAccess)
	require.ErrorIs(t, wrappedError, os.ErrNotExist)
	require.ErrorIs(t, wrappedError, errors.ErrFileAccess)

	var pathErr *os.PathError
	require.True(t, stdErrors.As(wrappedError, &pathErr))
}

func Test_SummaryAndTechnical(t *testing.T) {
	bare := errors.New("name is wrong").WithCode(errors.CodValidation)
	require.Equal(t, "name is wrong", errors.Summary(bare))
	require.Empty(t, errors.Technical(bare))

	wrapped := errors.Wrap(stdErrors.New("disk on fire"), "non-specific error")
	require.Equal(t, "non-specific error", errors.Summary(wrapped))
	require.Equal(t, "disk on fire", errors.Technical(wrapped))

	std := stdErrors.New("plain")
	require.Equal(t, "plain", errors.Summary(std))
	require.Equal(t, "plain", errors.Technical(std))

	require.Empty(t, errors.Summary(nil))
	require.Empty(t, errors.Technical(nil))
}
