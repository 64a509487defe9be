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
package match

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

// scripted plays a fixed list of moves, then fails.
type scripted struct {
	name  string
	moves []string
	delay time.Duration
	err   error
}

func (player *scripted) Name() string { return player.name }
func (player *scripted) Close() error { return nil }

func (player *scripted) Go(*Turn) (string, error) {
	time.Sleep(player.delay)

	if player.err != nil {
		return "", player.err
	}

	if len(player.moves) == 0 {
		return "", errors.New("out of moves")
	}

	move := player.moves[0]
	player.moves = player.moves[1:]
	return move, nil
}

// replay checks that the game's moves lead from its start to its final
// position.
func replay(t *testing.T, game *Game) {
	t.Helper()

	position, err := ataxx.New(game.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	for _, move := range game.Moves {
		if !position.Legal(move) {
			t.Fatalf("illegal move %s in %s", move, position.FEN())
		}

		position.MakeMove(move)
	}

	if fen := position.FEN(); fen != game.FinalFEN {
		t.Errorf("replayed to %q, game ended in %q", fen, game.FinalFEN)
	}
}

func TestPlayForfeits(t *testing.T) {
	tests := []struct {
		name    string
		players [2]Player
		clocks  [2]TimeControl
		result  Result
		reason  string
	}{
		{
			name: "illegal move",
			players: [2]Player{
				&scripted{name: "a", moves: []string{"g1f2"}},
				&scripted{name: "b", moves: []string{"g1e3"}},
			},
			result: Win,
			reason: "Illegal move g1e3",
		},
		{
			name: "engine error",
			players: [2]Player{
				&scripted{name: "a", err: errors.New("crashed")},
				&scripted{name: "b"},
			},
			result: Loss,
			reason: "Engine error: crashed",
		},
		{
			name: "read timeout",
			players: [2]Player{
				&scripted{name: "a", moves: []string{"g1f2"}},
				&scripted{name: "b", err: ErrReadTimeout},
			},
			result: Win,
			reason: "Timeout",
		},
		{
			name: "flag fall",
			players: [2]Player{
				&scripted{name: "a", moves: []string{"g1f2"}, delay: 20 * time.Millisecond},
				&scripted{name: "b", moves: []string{"a1b2"}},
			},
			clocks: [2]TimeControl{{Base: time.Millisecond}},
			result: Loss,
			reason: "Timeout",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := Play(context.Background(), ataxx.StartFEN, test.players, test.clocks)
			if err != nil {
				t.Fatal(err)
			}

			if game.Result != test.result || game.Reason != test.reason {
				t.Errorf("got %s {%s}, want %s {%s}", game.Result, game.Reason, test.result, test.reason)
			}

			replay(t, game)
		})
	}
}

func TestPlayAdjudication(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		players [2]Player
		result  Result
		reason  string
		moves   int
	}{
		{
			name: "eradication",
			fen:  "7/7/7/7/7/1o5/x6 x 0 1",
			players: [2]Player{
				&scripted{name: "red", moves: []string{"a2"}},
				&scripted{name: "blue"},
			},
			result: Win,
			reason: "Eradication",
			moves:  1,
		},
		{
			name: "blue moves first",
			fen:  "7/7/7/7/7/1o5/x6 o 0 1",
			players: [2]Player{
				&scripted{name: "blue", moves: []string{"b1"}},
				&scripted{name: "red"},
			},
			result: Win,
			reason: "Eradication",
			moves:  1,
		},
		{
			name: "draw clock",
			fen:  "x5o/7/7/7/7/7/o5x x 100 60",
			players: [2]Player{
				&scripted{name: "a"},
				&scripted{name: "b"},
			},
			result: Draw,
			reason: "Draw clock",
		},
		{
			name: "passing into population count",
			fen:  "ooooooo/ooooooo/ooooooo/ooooooo/ooooooo/oooooo-/xxxx--1 x 0 1",
			players: [2]Player{
				&scripted{name: "red", moves: []string{"0000"}},
				&scripted{name: "blue", moves: []string{"g1"}},
			},
			result: Loss,
			reason: "Population count",
			moves:  2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := Play(context.Background(), test.fen, test.players, [2]TimeControl{})
			if err != nil {
				t.Fatal(err)
			}

			if game.Result != test.result || game.Reason != test.reason {
				t.Errorf("got %s {%s}, want %s {%s}", game.Result, game.Reason, test.result, test.reason)
			}

			if len(game.Moves) != test.moves {
				t.Errorf("game has %d moves %v, want %d", len(game.Moves), game.MoveList(), test.moves)
			}

			replay(t, game)
		})
	}
}

func TestPlayAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	players := [2]Player{&scripted{name: "a"}, &scripted{name: "b"}}
	game, err := Play(ctx, ataxx.StartFEN, players, [2]TimeControl{})
	if err != nil {
		t.Fatal(err)
	}

	if !game.Aborted || game.Result != Draw || len(game.Moves) != 0 {
		t.Errorf("got %+v, want an aborted game", game)
	}
}

func TestPlayInvalidFEN(t *testing.T) {
	players := [2]Player{&scripted{name: "a"}, &scripted{name: "b"}}
	if _, err := Play(context.Background(), "7/7 x", players, [2]TimeControl{}); !errors.Is(err, ataxx.ErrInvalidFEN) {
		t.Errorf("got %v, want %v", err, ataxx.ErrInvalidFEN)
	}
}

func TestRunInternal(t *testing.T) {
	game, err := Run(context.Background(), &Config{
		PositionFEN: ataxx.StartFEN,
		Engines: [2]EngineConfig{
			{Name: "one", Depth: 1},
			{Name: "two", Depth: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if game.Aborted || strings.HasPrefix(game.Reason, "Engine error") || game.Reason == "Timeout" {
		t.Fatalf("game did not finish normally: %s", game)
	}

	if game.Players != [2]string{"one", "two"} {
		t.Errorf("players %v", game.Players)
	}

	replay(t, game)
}

func TestRunExternal(t *testing.T) {
	game, err := Run(context.Background(), &Config{
		PositionFEN: ataxx.StartFEN,
		Engines: [2]EngineConfig{
			testEngineConfig(t, "external"),
			{Name: "internal", Depth: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if game.Aborted || strings.HasPrefix(game.Reason, "Engine error") || game.Reason == "Timeout" {
		t.Fatalf("game did not finish normally: %s", game)
	}

	// both sides search at depth one, so the game is a mirror match
	replay(t, game)
}

func TestRunBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		engines [2]EngineConfig
		result  Result
	}{
		{
			name:    "bad time control",
			engines: [2]EngineConfig{{Name: "a", TimeC: "fast"}, {Name: "b"}},
			result:  Loss,
		},
		{
			name:    "missing binary",
			engines: [2]EngineConfig{{Name: "a"}, {Name: "b", Cmd: "./does-not-exist"}},
			result:  Win,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := Run(context.Background(), &Config{
				PositionFEN: ataxx.StartFEN,
				Engines:     test.engines,
			})
			if err != nil {
				t.Fatal(err)
			}

			if game.Result != test.result || len(game.Moves) != 0 {
				t.Errorf("got %s {%s}, want %s before any move", game.Result, game.Reason, test.result)
			}
		})
	}
}

func TestAdjudicate(t *testing.T) {
	tests := []struct {
		fen    string
		winner ataxx.Color
		reason string
		over   bool
	}{
		{ataxx.StartFEN, ataxx.NoColor, "", false},
		{"x6/7/7/7/7/7/7 o 0 1", ataxx.Red, "Eradication", true},
		{"x5o/7/7/7/7/7/o5x x 100 51", ataxx.NoColor, "Draw clock", true},
		{"xxxxxxx/xxxxxxx/xxxxxxx/xxxxxxx/ooooooo/ooooooo/ooooooo o 0 1", ataxx.Red, "Population count", true},
	}

	for _, test := range tests {
		position, err := ataxx.New(test.fen)
		if err != nil {
			t.Fatal(err)
		}

		winner, reason, over := Adjudicate(position)
		if winner != test.winner || reason != test.reason || over != test.over {
			t.Errorf("%s: got (%s, %q, %v), want (%s, %q, %v)",
				test.fen, winner, reason, over, test.winner, test.reason, test.over)
		}
	}
}

func TestResult(t *testing.T) {
	if Win.Flip() != Loss || Draw.Flip() != Draw {
		t.Error("Flip does not swap the point of view")
	}

	if GetPairResult(Win, Loss) != DrawDraw || GetPairResult(Win, Draw) != WinDraw {
		t.Error("pair results do not add up")
	}

	for result, want := range map[Result]string{Win: "1-0", Draw: "1/2-1/2", Loss: "0-1", 7: "?-?"} {
		if got := result.String(); got != want {
			t.Errorf("%d: got %q, want %q", result, got, want)
		}
	}
}
