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

type Code string

const (
	CodSuccessCompletion Code = "00000"
	CodInternalError     Code = "XX000"
	CodValidation        Code = "22023"
	CodSerialization     Code = "22000"
	CodPermissionDenied  Code = "42501"
	CodFileAccess        Code = "58P01"
	CodPersistence       Code = "58030"
)

var (
	CodeMap = make(map[string]Code)
)

// Sentinels for errors.Is. Any error carrying the same code matches.
var (
	ErrValidation    = New("validation error").WithCode(CodValidation)
	ErrFileAccess    = New("file access error").WithCode(CodFileAccess)
	ErrSerialization = New("serialization error").WithCode(CodSerialization)
	ErrPermission    = New("permission error").WithCode(CodPermissionDenied)
	ErrPersistence   = New("persistence error").WithCode(CodPersistence)
)
