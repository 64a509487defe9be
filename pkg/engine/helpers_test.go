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
package engine

import (
	"testing"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

func mustPosition(t *testing.T, fen string) *ataxx.Position {
	t.Helper()

	pos, err := ataxx.New(fen)
	if err != nil {
		t.Fatalf("ataxx.New(%q): %v", fen, err)
	}

	return pos
}

func moveStrings(moves []ataxx.Move) []string {
	strs := make([]string, len(moves))
	for i, move := range moves {
		strs[i] = move.String()
	}

	return strs
}
