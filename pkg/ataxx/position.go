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

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN of the standard Ataxx starting position.
const StartFEN = "x5o/7/7/7/7/7/o5x x 0 1"

// DrawClock is the half-move clock value at which a game is drawn.
const DrawClock = 100

// Position represents an Ataxx board along with the side to move and the
// move counters. A Position is a plain value, so copying it yields a fully
// independent board.
type Position struct {
	pieces [ColorN]Bitboard
	gaps   Bitboard

	turn      Color
	halfmoves int
	fullmoves int
}

// New returns the Position described by the given FEN string.
func New(fen string) (*Position, error) {
	var pos Position
	if err := pos.SetFEN(fen); err != nil {
		return nil, err
	}

	return &pos, nil
}

// Clone returns an independent copy of the Position.
func (pos *Position) Clone() *Position {
	clone := *pos
	return &clone
}

// SideToMove returns the Color whose turn it is.
func (pos *Position) SideToMove() Color {
	return pos.turn
}

// HalfMoves returns the number of half-moves since the last single move
// or capture.
func (pos *Position) HalfMoves() int {
	return pos.halfmoves
}

// FullMoves returns the full-move number.
func (pos *Position) FullMoves() int {
	return pos.fullmoves
}

// At returns the Piece on the given Square.
func (pos *Position) At(sq Square) Piece {
	switch {
	case pos.pieces[Red].IsSet(sq):
		return RedPiece
	case pos.pieces[Blue].IsSet(sq):
		return BluePiece
	case pos.gaps.IsSet(sq):
		return Gap
	default:
		return Empty
	}
}

// Occupant returns the Piece at the given file and rank. Cells outside
// the board are reported as gaps.
func (pos *Position) Occupant(file, rank int) Piece {
	if !OnBoard(file, rank) {
		return Gap
	}

	return pos.At(NewSquare(file, rank))
}

// Put places the given Piece on the given Square.
func (pos *Position) Put(sq Square, piece Piece) {
	pos.pieces[Red].Unset(sq)
	pos.pieces[Blue].Unset(sq)
	pos.gaps.Unset(sq)

	switch piece {
	case RedPiece, BluePiece:
		pos.pieces[piece].Set(sq)
	case Gap:
		pos.gaps.Set(sq)
	}
}

// PieceCount returns the number of pieces of the given Color.
func (pos *Position) PieceCount(color Color) int {
	return pos.pieces[color].Count()
}

func (pos *Position) empty() Bitboard {
	return all &^ (pos.pieces[Red] | pos.pieces[Blue] | pos.gaps)
}

// IsLegal reports whether the side to move may move a piece from the
// first file and rank to the second. Coordinates outside the board are
// never legal.
func (pos *Position) IsLegal(fromFile, fromRank, toFile, toRank int) bool {
	if !OnBoard(fromFile, fromRank) || !OnBoard(toFile, toRank) {
		return false
	}

	from, to := NewSquare(fromFile, fromRank), NewSquare(toFile, toRank)
	if d := Distance(from, to); d == 0 || d > 2 {
		return false
	}

	return pos.pieces[pos.turn].IsSet(from) && pos.empty().IsSet(to)
}

// Legal reports whether the given Move is legal in the Position. A pass
// is legal only when the side to move has no other move.
func (pos *Position) Legal(move Move) bool {
	if move.IsPass() {
		return !pos.CanMove(pos.turn)
	}

	return move.From < SquareN && move.To < SquareN && pos.IsLegal(
		move.From.File(), move.From.Rank(),
		move.To.File(), move.To.Rank(),
	)
}

// CanMove reports whether the given Color has any legal move, regardless
// of whose turn it is.
func (pos *Position) CanMove(color Color) bool {
	pieces := pos.pieces[color]
	return (pieces.Singles()|pieces.Doubles())&pos.empty() != 0
}

// MakeMove plays the given Move on the Position, flipping every opponent
// piece adjacent to the destination. The Move is assumed to be legal.
func (pos *Position) MakeMove(move Move) {
	us, them := pos.turn, pos.turn.Other()

	if !move.IsPass() {
		if move.IsDouble() {
			pos.pieces[us].Unset(move.From)
		}
		pos.pieces[us].Set(move.To)

		var target Bitboard
		target.Set(move.To)
		captured := pos.pieces[them] & target.Singles()
		pos.pieces[us] |= captured
		pos.pieces[them] &^= captured

		pos.halfmoves++
		if captured != 0 || move.IsSingle() {
			pos.halfmoves = 0
		}
	}

	pos.turn = them
	if pos.turn == Red {
		pos.fullmoves++
	}
}

// Winner reports whether the game is decided and, if so, who won. A
// drawn game is reported as decided with NoColor as the winner.
func (pos *Position) Winner() (Color, bool) {
	if pos.halfmoves >= DrawClock {
		return NoColor, true
	}

	red, blue := pos.PieceCount(Red), pos.PieceCount(Blue)
	switch {
	case red == 0:
		return Blue, true
	case blue == 0:
		return Red, true
	}

	if pos.CanMove(Red) || pos.CanMove(Blue) {
		return NoColor, false
	}

	switch {
	case red > blue:
		return Red, true
	case blue > red:
		return Blue, true
	default:
		return NoColor, true
	}
}

// ParseMove parses a move in either game or UAI notation and checks
// that it is legal in the Position. Two character UAI single moves are
// resolved to a clone from any adjacent piece of the side to move.
func (pos *Position) ParseMove(s string) (Move, error) {
	var move Move
	var err error

	if len(s) == 2 {
		var to Square
		if to, err = ParseSquare(s); err != nil {
			return Pass, err
		}

		var target Bitboard
		target.Set(to)
		sources := target.Singles() & pos.pieces[pos.turn]
		if sources == 0 {
			return Pass, fmt.Errorf("parse move %q: %w", s, ErrIllegalMove)
		}

		move = NewMove(sources.FirstOne(), to)
	} else if move, err = ParseMove(s); err != nil {
		return Pass, err
	}

	if !pos.Legal(move) {
		return Pass, fmt.Errorf("parse move %q: %w", s, ErrIllegalMove)
	}

	return move, nil
}

// String returns a human readable diagram of the Position, rank 7 first.
func (pos *Position) String() string {
	var b strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < Files; file++ {
			b.WriteString(" " + pos.Occupant(file, rank).String())
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a b c d e f g\n")
	fmt.Fprintf(&b, "\n%s to move, fen: %s\n", pos.turn, pos.FEN())
	return b.String()
}
