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

// Board is the read-only view of a game position used by the move
// enumerator and the static evaluator.
type Board interface {
	// Occupant returns the piece at the given zero-indexed file and rank.
	Occupant(file, rank int) ataxx.Piece

	// IsLegal reports whether the side to move may move from the first
	// coordinate to the second. It must reject off-board coordinates.
	IsLegal(fromFile, fromRank, toFile, toRank int) bool

	// Winner reports whether the game is decided, and who won it. A
	// decided game without a winner reports ataxx.NoColor.
	Winner() (ataxx.Color, bool)

	PieceCount(color ataxx.Color) int
	CanMove(color ataxx.Color) bool
	SideToMove() ataxx.Color
}

// Position is a Board which can be cloned and played on. Clones must not
// share any mutable state with the original. *ataxx.Position satisfies
// Position[*ataxx.Position].
type Position[P any] interface {
	Board

	Clone() P
	MakeMove(move ataxx.Move)
}
