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
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("ataxx: invalid move string")
	ErrIllegalMove = errors.New("ataxx: illegal move")
)

// Move represents an Ataxx move from a source to a destination square.
// Single (clone) moves keep the source square occupied, double (jump)
// moves vacate it.
type Move struct {
	From, To Square
}

// Pass is the move made by a side which has no legal moves.
var Pass = Move{From: SquareN, To: SquareN}

// NewMove returns a Move from the given source to the given destination.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses a move in game notation: four characters giving the
// source and destination squares, or "-" for a pass. The UAI null move
// "0000" is accepted as a pass too. Single moves in UAI's two character
// form need a position to be resolved, see Position.ParseMove.
func ParseMove(s string) (Move, error) {
	switch s {
	case "-", "0000":
		return Pass, nil
	}

	if len(s) != 4 {
		return Pass, fmt.Errorf("parse move %q: %w", s, ErrInvalidMove)
	}

	from, err := ParseSquare(s[:2])
	if err != nil {
		return Pass, err
	}

	to, err := ParseSquare(s[2:])
	if err != nil {
		return Pass, err
	}

	return NewMove(from, to), nil
}

// IsPass checks if the Move is a pass.
func (move Move) IsPass() bool {
	return move == Pass
}

// IsSingle checks if the Move is a clone to an adjacent square.
func (move Move) IsSingle() bool {
	return !move.IsPass() && Distance(move.From, move.To) <= 1
}

// IsDouble checks if the Move is a jump.
func (move Move) IsDouble() bool {
	return !move.IsPass() && Distance(move.From, move.To) == 2
}

// String returns the Move in game notation: srcFile srcRank dstFile
// dstRank, or "-" for a pass.
func (move Move) String() string {
	if move.IsPass() {
		return "-"
	}

	return move.From.String() + move.To.String()
}

// UAI returns the Move in UAI notation, where single moves are written
// with the destination only and a pass is "0000".
func (move Move) UAI() string {
	switch {
	case move.IsPass():
		return "0000"
	case move.IsSingle():
		return move.To.String()
	default:
		return move.String()
	}
}
