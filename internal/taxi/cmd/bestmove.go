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
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/pkg/ataxx"
	"laptudirm.com/x/taxi/pkg/engine"
)

func BestMove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove [fen]",
		Short: "Print the move taxi plays in a position",
		Long: heredoc.Doc(`bestmove searches the given position, or the start position
			if none is given, and prints the move taxi would play for
			the side to move. A pass is printed as "-".

			The FEN may be given as a single quoted argument or as
			separate fields.`),
		Example: heredoc.Doc(`
			$ taxi bestmove
			$ taxi bestmove --depth 2 "x5o/7/7/7/7/7/o5x o 0 1"
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fen := ataxx.StartFEN
			if len(args) > 0 {
				fen = strings.Join(args, " ")
			}

			position, err := ataxx.New(fen)
			if err != nil {
				return err
			}

			if winner, over := position.Winner(); over {
				return fmt.Errorf("game is over, winner: %s", winner)
			}

			e := engine.New[*ataxx.Position](config.Engine)
			result, err := e.Think(position, position.SideToMove())
			if err != nil {
				return fmt.Errorf("bestmove: %w", err)
			}

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Print(position)
				fmt.Printf("\ndepth %d, %d nodes, score %d\n", e.Config().Depth, result.Nodes, result.Score)
			}

			fmt.Println(result.Move)
			return nil
		},
	}

	engineFlags(cmd)
	cmd.Flags().Bool("verbose", false, "Print the board and search statistics")

	return cmd
}
