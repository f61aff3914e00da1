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

var ratingLabels = map[int]string{
	5: "Leading",
	4: "Strong",
	3: "Solid",
	2: "Building",
	1: "Not Meeting Expectations",
}

// RatingLabel returns the qualitative label of a rating, or an empty string
// outside 1..5.
func RatingLabel(rating int) string {
	return ratingLabels[rating]
}
