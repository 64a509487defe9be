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
package schedule

import (
	"slices"
	"testing"
)

func TestEncounters(t *testing.T) {
	tests := []struct {
		scheduler string
		players   int
		want      [][2]int
	}{
		{"round-robin", 2, [][2]int{{0, 1}}},
		{"round-robin", 4, [][2]int{{0, 3}, {1, 2}, {0, 2}, {3, 1}, {0, 1}, {2, 3}}},
		{"", 3, [][2]int{{1, 2}, {0, 2}, {0, 1}}},
		{"gauntlet", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{"gauntlet", 1, [][2]int{}},
	}

	for _, test := range tests {
		scheduler, err := New(test.scheduler)
		if err != nil {
			t.Fatal(err)
		}

		// every round must be the same
		for round := 0; round < 2; round++ {
			got := Encounters(scheduler, test.players)
			if !slices.Equal(got, test.want) {
				t.Errorf("%q with %d players, round %d: got %v, want %v",
					test.scheduler, test.players, round, got, test.want)
			}
		}
	}
}

func TestRoundRobinCoverage(t *testing.T) {
	for n := 2; n <= 9; n++ {
		met := make(map[[2]int]int)
		for _, encounter := range Encounters(&RoundRobin{}, n) {
			p1, p2 := min(encounter[0], encounter[1]), max(encounter[0], encounter[1])
			met[[2]int{p1, p2}]++
		}

		for p1 := 0; p1 < n; p1++ {
			for p2 := p1 + 1; p2 < n; p2++ {
				if met[[2]int{p1, p2}] != 1 {
					t.Errorf("%d players: %d and %d meet %d times", n, p1, p2, met[[2]int{p1, p2}])
				}
			}
		}
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New("swiss"); err == nil {
		t.Error("expected an error for an unknown scheduler")
	}
}
