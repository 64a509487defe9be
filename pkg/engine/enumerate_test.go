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
	"reflect"
	"testing"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

func TestEnumerateOrder(t *testing.T) {
	pos := mustPosition(t, ataxx.StartFEN)

	want := []string{
		"a7a5", "a7a6", "a7b5", "a7b6", "a7b7", "a7c5", "a7c6", "a7c7",
		"g1e1", "g1e2", "g1e3", "g1f1", "g1f2", "g1f3", "g1g2", "g1g3",
	}

	if got := moveStrings(Enumerate(pos, ataxx.Red)); !reflect.DeepEqual(got, want) {
		t.Errorf("Enumerate(start, red):\n got %v\nwant %v", got, want)
	}
}

func TestEnumerateEmpty(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color ataxx.Color
	}{
		{"no pieces", "7/7/7/7/7/7/o6 x 0 1", ataxx.Red},
		{"walled in", "6o/7/7/7/---4/---4/x--4 x 0 1", ataxx.Red},
		{"not to move", ataxx.StartFEN, ataxx.Blue},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if moves := Enumerate(mustPosition(t, test.fen), test.color); len(moves) != 0 {
				t.Errorf("Enumerate: got %v, want no moves", moveStrings(moves))
			}
		})
	}
}

func TestEnumerateLegalAndBounded(t *testing.T) {
	fens := []string{
		ataxx.StartFEN,
		"x5o/7/2-1-2/7/2-1-2/7/o5x o 0 1",
		"7/1xxx3/1xox3/1xxx3/7/7/6o x 0 1",
		"3x3/7/7/x2o2x/7/7/3x3 o 0 1",
	}

	for _, fen := range fens {
		pos := mustPosition(t, fen)
		color := pos.SideToMove()

		moves := Enumerate(pos, color)
		if bound := pos.PieceCount(color) * 24; len(moves) > bound {
			t.Errorf("%s: %d moves, more than %d", fen, len(moves), bound)
		}

		seen := make(map[ataxx.Move]bool)
		for _, move := range moves {
			if !pos.Legal(move) {
				t.Errorf("%s: enumerated illegal move %s", fen, move)
			}
			if seen[move] {
				t.Errorf("%s: move %s enumerated twice", fen, move)
			}
			seen[move] = true
		}
	}
}
