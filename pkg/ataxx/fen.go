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
	"strconv"
	"strings"
)

var ErrInvalidFEN = errors.New("ataxx: invalid fen string")

// SetFEN resets the Position to the one described by the given FEN
// string. The board and side to move fields are required, the move
// counters default to 0 and 1 respectively.
func (pos *Position) SetFEN(fen string) error {
	*pos = Position{fullmoves: 1}

	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fmt.Errorf("fen %q: %w", fen, ErrInvalidFEN)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Ranks {
		return fmt.Errorf("fen %q: expected %d ranks: %w", fen, Ranks, ErrInvalidFEN)
	}

	for i, row := range rows {
		rank, file := Ranks-1-i, 0
		for _, c := range row {
			if file >= Files {
				return fmt.Errorf("fen %q: rank %d too long: %w", fen, rank+1, ErrInvalidFEN)
			}

			switch {
			case c >= '1' && c <= '7':
				file += int(c - '0')
				continue
			case c == 'x' || c == 'X':
				pos.Put(NewSquare(file, rank), RedPiece)
			case c == 'o' || c == 'O':
				pos.Put(NewSquare(file, rank), BluePiece)
			case c == '-':
				pos.Put(NewSquare(file, rank), Gap)
			default:
				return fmt.Errorf("fen %q: bad symbol %q: %w", fen, c, ErrInvalidFEN)
			}

			file++
		}

		if file != Files {
			return fmt.Errorf("fen %q: rank %d has %d files: %w", fen, rank+1, file, ErrInvalidFEN)
		}
	}

	switch fields[1] {
	case "x", "X":
		pos.turn = Red
	case "o", "O":
		pos.turn = Blue
	default:
		return fmt.Errorf("fen %q: bad side to move: %w", fen, ErrInvalidFEN)
	}

	var err error
	if len(fields) >= 3 {
		if pos.halfmoves, err = strconv.Atoi(fields[2]); err != nil {
			return fmt.Errorf("fen %q: half-move clock: %w", fen, ErrInvalidFEN)
		}
	}

	if len(fields) >= 4 {
		if pos.fullmoves, err = strconv.Atoi(fields[3]); err != nil {
			return fmt.Errorf("fen %q: full-move number: %w", fen, ErrInvalidFEN)
		}
	}

	return nil
}

// FEN returns the FEN string of the Position.
func (pos *Position) FEN() string {
	var fen strings.Builder

	for rank := Ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < Files; file++ {
			piece := pos.Occupant(file, rank)
			if piece == Empty {
				empty++
				continue
			}

			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(piece.String())
		}

		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			fen.WriteByte('/')
		}
	}

	turn := "x"
	if pos.turn == Blue {
		turn = "o"
	}

	fmt.Fprintf(&fen, " %s %d %d", turn, pos.halfmoves, pos.fullmoves)
	return fen.String()
}
