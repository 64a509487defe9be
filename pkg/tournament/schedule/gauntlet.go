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

// Gauntlet pits the first player against every other one.
type Gauntlet struct {
	playerCount int
	gameNumber  int
}

func (g *Gauntlet) Initialize(n int) {
	g.playerCount = n
	g.gameNumber = 0
}

func (g *Gauntlet) NextEncounter() (int, int) {
	g.gameNumber++
	return 0, g.gameNumber
}

func (g *Gauntlet) TotalEncounters() int {
	return max(g.playerCount-1, 0)
}
