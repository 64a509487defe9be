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
package ataxx

import "fmt"

// Board dimensions.
const (
	Files   = 7
	Ranks   = 7
	SquareN = Files * Ranks
)

// Square represents a single cell of the board. Squares are numbered
// rank-wise from a1 (0) to g7 (48).
type Square uint8

// NewSquare returns the Square at the given zero-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*Files + file)
}

// ParseSquare parses a square in algebraic notation, like "c5".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("parse square %q: %w", s, ErrInvalidMove)
	}

	file, rank := int(s[0])-'a', int(s[1])-'1'
	if !OnBoard(file, rank) {
		return 0, fmt.Errorf("parse square %q: %w", s, ErrInvalidMove)
	}

	return NewSquare(file, rank), nil
}

// OnBoard reports whether the given file and rank lie inside the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

// File returns the zero-indexed file of the Square.
func (sq Square) File() int {
	return int(sq) % Files
}

// Rank returns the zero-indexed rank of the Square.
func (sq Square) Rank() int {
	return int(sq) / Files
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Distance returns the number of king steps between two squares.
func Distance(a, b Square) int {
	return max(abs(a.File()-b.File()), abs(a.Rank()-b.Rank()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
