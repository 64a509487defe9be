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

// Enumerate returns the legal moves of the given color in the order the
// search visits them. Source cells are scanned column-major, file a to g
// and rank 1 to 7 within each file. The destinations of each source are
// scanned the same way over its 5x5 neighbourhood, offsets -2 to +2, and
// every candidate, including the source itself and off-board cells, is
// checked with the board's legality predicate.
func Enumerate(board Board, color ataxx.Color) []ataxx.Move {
	piece := color.Piece()

	var sources []ataxx.Square
	for file := 0; file < ataxx.Files; file++ {
		for rank := 0; rank < ataxx.Ranks; rank++ {
			if board.Occupant(file, rank) == piece {
				sources = append(sources, ataxx.NewSquare(file, rank))
			}
		}
	}

	var moves []ataxx.Move
	for _, from := range sources {
		file, rank := from.File(), from.Rank()
		for df := -2; df <= 2; df++ {
			for dr := -2; dr <= 2; dr++ {
				if board.IsLegal(file, rank, file+df, rank+dr) {
					to := ataxx.NewSquare(file+df, rank+dr)
					moves = append(moves, ataxx.NewMove(from, to))
				}
			}
		}
	}

	return moves
}
