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
// Package schedule decides which players meet in every round of a
// tournament.
package schedule

import (
	"fmt"
)

// New returns the Scheduler with the given name. The empty name selects
// a round-robin.
func New(name string) (Scheduler, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	case "gauntlet":
		return &Gauntlet{}, nil
	default:
		return nil, fmt.Errorf("new tour: invalid scheduler %s", name)
	}
}

// Scheduler hands out the encounters of one round.
type Scheduler interface {
	// Initialize starts a new round between n players.
	Initialize(n int)

	// NextEncounter returns the players of the round's next encounter.
	NextEncounter() (int, int)

	// TotalEncounters returns the number of encounters in a round.
	TotalEncounters() int
}

// Encounters returns every encounter of one round.
func Encounters(scheduler Scheduler, n int) [][2]int {
	scheduler.Initialize(n)

	encounters := make([][2]int, scheduler.TotalEncounters())
	for i := range encounters {
		p1, p2 := scheduler.NextEncounter()
		encounters[i] = [2]int{p1, p2}
	}

	return encounters
}
