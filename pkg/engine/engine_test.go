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

import (
	"errors"
	"testing"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

func TestChooseMoveImmediateWin(t *testing.T) {
	tests := []struct {
		fen   string
		color ataxx.Color
	}{
		{"6x/7/7/3o3/7/7/x6 x 0 1", ataxx.Red},
		{"6o/7/7/3x3/7/7/o6 o 0 1", ataxx.Blue},
	}

	for _, test := range tests {
		pos := mustPosition(t, test.fen)
		engine := New[*ataxx.Position](DefaultConfig())

		result, err := engine.Think(pos, test.color)
		if err != nil {
			t.Fatalf("%s: %v", test.fen, err)
		}

		child := pos.Clone()
		child.MakeMove(result.Move)
		if winner, over := child.Winner(); !over || winner != test.color {
			t.Errorf("%s: %s does not win immediately", test.fen, result.Move)
		}

		if result.Move.String() != "a1c3" || result.Score != Infinity {
			t.Errorf("%s: got %s (%d), want a1c3 (Infinity)", test.fen, result.Move, result.Score)
		}
	}
}

func TestChooseMoveLegalAndDeterministic(t *testing.T) {
	fens := []string{
		ataxx.StartFEN,
		"x5o/7/2-1-2/7/2-1-2/7/o5x o 0 1",
		"7/2o4/1xox3/7/3o3/7/7 x 0 1",
	}

	for _, fen := range fens {
		pos := mustPosition(t, fen)
		color := pos.SideToMove()
		engine := New[*ataxx.Position](Config{Depth: 3})

		first, err := engine.ChooseMove(pos, color)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		if !pos.Legal(first) || first.IsPass() {
			t.Errorf("%s: chose illegal move %s", fen, first)
		}
		if pos.FEN() != fen {
			t.Errorf("%s: search modified the position to %s", fen, pos.FEN())
		}

		for i := 0; i < 3; i++ {
			if again, _ := engine.ChooseMove(pos, color); again != first {
				t.Errorf("%s: chose %s and then %s", fen, first, again)
			}
		}
	}
}

func TestChooseMovePass(t *testing.T) {
	pos := mustPosition(t, "6o/7/7/7/---4/---4/x--4 x 0 1")
	engine := New[*ataxx.Position](DefaultConfig())

	result, err := engine.Think(pos, ataxx.Red)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Move.IsPass() || result.Nodes != 0 {
		t.Errorf("got %s after %d nodes, want a pass without searching", result.Move, result.Nodes)
	}
}

func TestChooseMoveErrors(t *testing.T) {
	engine := New[*ataxx.Position](Config{Depth: 2})

	if _, err := engine.ChooseMove(mustPosition(t, ataxx.StartFEN), ataxx.Blue); !errors.Is(err, ErrNotToMove) {
		t.Errorf("blue on red's turn: got %v, want ErrNotToMove", err)
	}

	move, err := engine.ChooseMove(mustPosition(t, "6x/7/7/7/---4/---4/o--4 x 0 1"), ataxx.Red)
	if !errors.Is(err, ErrNoMove) || !move.IsPass() {
		t.Errorf("degenerate root: got %s, %v, want a pass and ErrNoMove", move, err)
	}
}

func TestNewDepth(t *testing.T) {
	if depth := New[*ataxx.Position](Config{}).Config().Depth; depth != DefaultDepth {
		t.Errorf("zero depth became %d, want %d", depth, DefaultDepth)
	}
}

func TestThinkMoveChoices(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		move  string
		score int
	}{
		{ataxx.StartFEN, 3, "a7a5", 1},
		{ataxx.StartFEN, DefaultDepth, "a7a5", 1},
		{"7/2o4/1xox3/7/3o3/7/7 x 0 1", 2, "b5b6", 4},
		{"7/2o4/1xox3/7/3o3/7/7 x 0 1", 4, "b5c4", WinningValue + 1},

		// blue to move
		{"x5o/7/7/7/7/7/o5x o 0 1", 4, "a1a2", 3},
		{"x5o/7/7/7/7/x6/o5x o 0 1", 2, "a1b1", 2},
		{"x5o/7/7/7/7/x6/o5x o 0 1", 4, "a1a3", 4},
		{"7/7/7/2ox3/2xo3/7/7 o 0 1", 2, "c4c5", 3},
		{"7/7/7/2ox3/2xo3/7/7 o 0 1", 3, "c4a2", WinningValue},
		{"7/7/7/2ox3/2xo3/7/7 o 0 1", 4, "c4b2", WinningValue + 1},
	}

	for _, test := range tests {
		pos := mustPosition(t, test.fen)
		engine := New[*ataxx.Position](Config{Depth: test.depth})

		result, err := engine.Think(pos, pos.SideToMove())
		if err != nil {
			t.Errorf("%s depth %d: %v", test.fen, test.depth, err)
			continue
		}

		if result.Move.String() != test.move || result.Score != test.score {
			t.Errorf("%s depth %d: got %s (%d), want %s (%d)",
				test.fen, test.depth, result.Move, result.Score, test.move, test.score)
		}
	}
}
