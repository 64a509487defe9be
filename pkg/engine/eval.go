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

import "laptudirm.com/x/taxi/pkg/ataxx"

// Evaluate statically scores the board from the given color's point of
// view. Decided games score +winMagnitude for a win, -winMagnitude for a
// loss and 0 for a draw; undecided ones score the material difference.
//
// The search passes WinningValue plus the remaining depth as the win
// magnitude, so wins found closer to the root score higher.
func Evaluate(board Board, color ataxx.Color, winMagnitude int) int {
	if winner, over := board.Winner(); over {
		switch winner {
		case color:
			return winMagnitude
		case color.Other():
			return -winMagnitude
		default:
			return 0
		}
	}

	return board.PieceCount(color) - board.PieceCount(color.Other())
}
