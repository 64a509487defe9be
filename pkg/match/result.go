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
package match

// Result is the outcome of a game from player one's point of view.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameLostBy maps the index of the player at fault to the Result.
var GameLostBy = [2]Result{
	0: Loss,
	1: Win,
}

// Flip returns the Result from player two's point of view.
func (result Result) Flip() Result {
	return -result
}

func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// PairResult is the sum of the Results of a game pair, where both games
// start from the same opening with the players' colors swapped.
type PairResult int

const (
	LossLoss = PairResult(Loss + Loss) // player two double kills
	DrawLoss = PairResult(Draw + Loss) // player two wins and holds
	DrawDraw = PairResult(Draw + Draw) // win-loss or draw-draw
	WinDraw  = PairResult(Win + Draw)  // player one wins and holds
	WinWin   = PairResult(Win + Win)   // player one double kills
)

// GetPairResult combines the Results of a game pair, both from player
// one's point of view.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}
