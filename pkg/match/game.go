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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

// Config describes a single game.
type Config struct {
	PositionFEN string

	// Engines[0] moves first from PositionFEN.
	Engines [2]EngineConfig
}

// Game is the record of a finished game.
type Game struct {
	StartFEN string
	FinalFEN string
	Players  [2]string

	// Red is the index of the player of the red pieces.
	Red int

	Moves []ataxx.Move

	Result Result // from Players[0]'s point of view
	Reason string

	// Aborted is set if the game was interrupted before it ended.
	Aborted bool
}

// MoveList returns the game's moves in game notation.
func (game *Game) MoveList() []string {
	moves := make([]string, len(game.Moves))
	for i, move := range game.Moves {
		moves[i] = move.String()
	}

	return moves
}

func (game *Game) String() string {
	return fmt.Sprintf(
		"%s vs %s: %s {%s}",
		game.Players[0], game.Players[1], game.Result, game.Reason,
	)
}

// Run starts the players of the given config and plays a game between
// them. A player which fails to start loses the game.
func Run(ctx context.Context, config *Config) (*Game, error) {
	var players [2]Player
	var clocks [2]TimeControl

	lost := func(i int, err error) *Game {
		return &Game{
			StartFEN: config.PositionFEN,
			FinalFEN: config.PositionFEN,
			Players:  [2]string{config.Engines[0].Name, config.Engines[1].Name},
			Result:   GameLostBy[i],
			Reason:   err.Error(),
		}
	}

	for i, engine := range config.Engines {
		var err error
		if clocks[i], err = ParseTime(engine.TimeC); err != nil {
			return lost(i, err), nil
		}
	}

	for i, engine := range config.Engines {
		player, err := NewPlayer(engine)
		if err != nil {
			return lost(i, err), nil
		}

		players[i] = player
		defer player.Close()
	}

	return Play(ctx, config.PositionFEN, players, clocks)
}

// Play plays a game between the given players from the given position,
// where players[0] moves first and clocks[i] is players[i]'s clock. A
// player which errors, runs out of time or makes an illegal move loses.
// If the context is cancelled the game is aborted as a draw.
func Play(ctx context.Context, fen string, players [2]Player, clocks [2]TimeControl) (*Game, error) {
	position, err := ataxx.New(fen)
	if err != nil {
		return nil, err
	}

	first := position.SideToMove()

	game := &Game{
		StartFEN: fen,
		Players:  [2]string{players[0].Name(), players[1].Name()},
		Red:      int(first),
	}

	turn := Turn{FEN: fen, Position: position}

	finish := func(result Result, reason string) (*Game, error) {
		game.Result = result
		game.Reason = reason
		game.FinalFEN = position.FEN()

		logrus.WithFields(logrus.Fields{
			"players": game.Players[0] + " vs " + game.Players[1],
			"result":  game.Result,
			"reason":  game.Reason,
			"plies":   len(game.Moves),
		}).Debug("game finished")

		return game, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			game.Aborted = true
			return finish(Draw, "Aborted")
		}

		if winner, reason, over := Adjudicate(position); over {
			switch winner {
			case ataxx.NoColor:
				return finish(Draw, reason)
			case first:
				return finish(Win, reason)
			default:
				return finish(Loss, reason)
			}
		}

		stm := position.SideToMove()
		index := 0
		if stm != first {
			index = 1
		}

		turn.Clocks[first] = clocks[0]
		turn.Clocks[first.Other()] = clocks[1]

		start := time.Now()
		text, err := players[index].Go(&turn)
		inTime := clocks[index].Charge(time.Since(start))

		switch {
		case !inTime, errors.Is(err, ErrReadTimeout):
			return finish(GameLostBy[index], "Timeout")
		case err != nil:
			return finish(GameLostBy[index], "Engine error: "+err.Error())
		}

		move, err := position.ParseMove(text)
		if err != nil {
			return finish(GameLostBy[index], fmt.Sprintf("Illegal move %s", text))
		}

		position.MakeMove(move)
		game.Moves = append(game.Moves, move)

		turn.Moves = append(turn.Moves, move.UAI())
		if position.HalfMoves() == 0 {
			turn.FEN = position.FEN()
			turn.Moves = nil
		}
	}
}

// Adjudicate reports whether the game in the given position is over,
// along with the winner (NoColor for a draw) and the reason.
func Adjudicate(position *ataxx.Position) (ataxx.Color, string, bool) {
	winner, over := position.Winner()
	if !over {
		return ataxx.NoColor, "", false
	}

	switch {
	case position.HalfMoves() >= ataxx.DrawClock:
		return winner, "Draw clock", true
	case position.PieceCount(ataxx.Red) == 0, position.PieceCount(ataxx.Blue) == 0:
		return winner, "Eradication", true
	default:
		return winner, "Population count", true
	}
}
