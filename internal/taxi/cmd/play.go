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
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/internal/util"
	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/ataxx"
	"laptudirm.com/x/taxi/pkg/match"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against taxi in the terminal",
		Long: heredoc.Doc(`play starts a game between you and taxi. Moves are entered
			in game notation (a1b3), or with the destination only for
			single moves (b2). Enter "resign" to give up.

			When the game ends it is saved to the game archive, unless
			--no-save is given.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			colorStr, _ := cmd.Flags().GetString("color")
			color, err := ataxx.ParseColor(colorStr)
			if err != nil {
				return err
			}

			fen, _ := cmd.Flags().GetString("fen")
			position, err := ataxx.New(fen)
			if err != nil {
				return err
			}

			human := &humanPlayer{
				name: "human",
				in:   bufio.NewScanner(os.Stdin),
				out:  os.Stdout,
			}

			computer := &spinningPlayer{match.NewInternalPlayer(match.EngineConfig{
				Name:  "taxi",
				Depth: config.Engine.Depth,
			})}

			players := [2]match.Player{human, computer}
			if position.SideToMove() != color {
				players[0], players[1] = players[1], players[0]
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			game, err := match.Play(ctx, fen, players, [2]match.TimeControl{})
			if err != nil {
				return err
			}

			final, _ := ataxx.New(game.FinalFEN)
			fmt.Printf("\n%s\n%s\n", final, game)

			if noSave, _ := cmd.Flags().GetBool("no-save"); noSave || game.Aborted {
				return nil
			}

			store, err := archive.Open(config.Archive)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.Save(archive.NewRecord("casual game", game))
			if err != nil {
				return err
			}

			fmt.Printf("Game saved as \x1b[32m%s\x1b[0m.\n", id)
			return nil
		},
	}

	engineFlags(cmd)
	cmd.Flags().String("color", "x", "Your color, x (red) or o (blue)")
	cmd.Flags().String("fen", ataxx.StartFEN, "Position to start the game from")
	cmd.Flags().Bool("no-save", false, "Don't save the game to the archive")

	return cmd
}

var errResigned = errors.New("resigned")

// humanPlayer reads moves from a terminal.
type humanPlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func (human *humanPlayer) Name() string { return human.name }
func (human *humanPlayer) Close() error { return nil }

func (human *humanPlayer) Go(turn *match.Turn) (string, error) {
	position := turn.Position
	fmt.Fprintf(human.out, "\n%s\n", position)

	if !position.CanMove(position.SideToMove()) {
		fmt.Fprintln(human.out, "You have no legal moves, passing.")
		return ataxx.Pass.UAI(), nil
	}

	for {
		fmt.Fprint(human.out, "move> ")
		if !human.in.Scan() {
			if err := human.in.Err(); err != nil {
				return "", err
			}

			return "", errResigned
		}

		text := strings.TrimSpace(human.in.Text())
		switch text {
		case "":
			continue
		case "resign", "quit":
			return "", errResigned
		}

		move, err := position.ParseMove(text)
		if err != nil {
			fmt.Fprintf(human.out, "\x1b[31m%v\x1b[0m\n", err)
			continue
		}

		return move.UAI(), nil
	}
}

// spinningPlayer shows the working spinner while its player thinks.
type spinningPlayer struct {
	match.Player
}

func (player *spinningPlayer) Go(turn *match.Turn) (string, error) {
	util.StartSpinner(player.Name() + " is thinking")
	defer util.PauseSpinner()

	move, err := player.Player.Go(turn)
	if err == nil {
		util.PauseSpinner()
		fmt.Printf("%s plays %s\n", player.Name(), move)
	}

	return move, err
}
