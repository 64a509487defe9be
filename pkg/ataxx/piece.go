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

// Color represents one of the two sides of an Ataxx game.
type Color uint8

const (
	Red  Color = iota // x, moves first
	Blue              // o

	// NoColor is reported as the winner of a drawn game.
	NoColor
)

// ColorN is the number of playing colors.
const ColorN = 2

// ParseColor parses a color from its name or its FEN symbol.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red", "x", "X":
		return Red, nil
	case "blue", "o", "O":
		return Blue, nil
	default:
		return NoColor, fmt.Errorf("parse color: unknown color %q", s)
	}
}

// Other returns the opponent of the given Color.
func (c Color) Other() Color {
	return c ^ 1
}

// Piece returns the Piece of the given Color.
func (c Color) Piece() Piece {
	return Piece(c)
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Piece represents the content of a single cell.
type Piece uint8

const (
	RedPiece  Piece = Piece(Red)
	BluePiece Piece = Piece(Blue)
	Gap       Piece = 2 // blocked cell
	Empty     Piece = 3
)

// Color returns the Color owning the Piece, or NoColor for gaps and
// empty cells.
func (p Piece) Color() Color {
	if p > BluePiece {
		return NoColor
	}

	return Color(p)
}

func (p Piece) String() string {
	switch p {
	case RedPiece:
		return "x"
	case BluePiece:
		return "o"
	case Gap:
		return "-"
	default:
		return "."
	}
}
