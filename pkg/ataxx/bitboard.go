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

import "math/bits"

// Bitboard is a set of squares, bit n standing for the square with index n.
type Bitboard uint64

const (
	// all has a bit set for every square on the board.
	all Bitboard = 1<<SquareN - 1

	fileA Bitboard = 0x0040810204081
	fileB          = fileA << 1
	fileF          = fileA << 5
	fileG          = fileA << 6

	notFileA  = all &^ fileA
	notFileG  = all &^ fileG
	notFileAB = all &^ (fileA | fileB)
	notFileFG = all &^ (fileF | fileG)
)

// Set adds the given square to the Bitboard.
func (bb *Bitboard) Set(sq Square) {
	*bb |= 1 << sq
}

// Unset removes the given square from the Bitboard.
func (bb *Bitboard) Unset(sq Square) {
	*bb &^= 1 << sq
}

// IsSet checks if the given square is in the Bitboard.
func (bb Bitboard) IsSet(sq Square) bool {
	return bb&(1<<sq) != 0
}

// Count returns the number of squares in the Bitboard.
func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// FirstOne returns the lowest square in the Bitboard. The Bitboard
// must not be empty.
func (bb Bitboard) FirstOne() Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

func (bb Bitboard) north() Bitboard { return (bb << 7) & all }
func (bb Bitboard) south() Bitboard { return bb >> 7 }
func (bb Bitboard) east() Bitboard  { return (bb << 1) & notFileA }
func (bb Bitboard) west() Bitboard  { return (bb >> 1) & notFileG }

// Singles returns the squares one step away from any square in the
// Bitboard, which are the targets of single (clone) moves.
func (bb Bitboard) Singles() Bitboard {
	vertical := bb | bb.north() | bb.south()
	return (vertical | vertical.east() | vertical.west()) &^ bb
}

// Doubles returns the squares exactly two steps away from any square in
// the Bitboard, which are the targets of double (jump) moves.
func (bb Bitboard) Doubles() Bitboard {
	var moves Bitboard

	// two ranks up and two ranks down, files -2..+2
	moves |= (bb << 12) & notFileFG
	moves |= (bb << 13) & notFileG
	moves |= bb << 14
	moves |= (bb << 15) & notFileA
	moves |= (bb << 16) & notFileAB
	moves |= (bb >> 16) & notFileFG
	moves |= (bb >> 15) & notFileG
	moves |= bb >> 14
	moves |= (bb >> 13) & notFileA
	moves |= (bb >> 12) & notFileAB

	// two files right and two files left, ranks -1..+1
	moves |= (bb << 9) & notFileAB
	moves |= (bb << 2) & notFileAB
	moves |= (bb >> 5) & notFileAB
	moves |= (bb << 5) & notFileFG
	moves |= (bb >> 2) & notFileFG
	moves |= (bb >> 9) & notFileFG

	return moves & all
}
