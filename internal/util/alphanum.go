// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package util

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare compares two strings in natural order, so that game-2
// sorts before game-10. Runs of digits are compared as numbers and all
// other runs lexically. The result is -1, 0, or +1, like strings.Compare.
func AlphanumCompare(a, b string) int {
	chunksA := chunkify(a)
	chunksB := chunkify(b)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		aInt, aErr := strconv.Atoi(chunksA[i])
		bInt, bErr := strconv.Atoi(chunksB[i])

		var c int
		if aErr == nil && bErr == nil {
			c = cmp.Compare(aInt, bInt)
		} else {
			c = strings.Compare(chunksA[i], chunksB[i])
		}

		if c != 0 {
			return c
		}
	}

	// all shared chunks are equal, the shorter string comes first
	return cmp.Compare(len(chunksA), len(chunksB))
}

// AlphanumLess reports whether a precedes b in natural order.
func AlphanumLess(a, b string) bool {
	return AlphanumCompare(a, b) < 0
}
