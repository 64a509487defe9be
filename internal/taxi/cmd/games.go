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

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/ataxx"
)

func Games() *cobra.Command {
	return &cobra.Command{
		Use:   "games [id]",
		Short: "List the archived games or show one of them",
		Long: heredoc.Doc(`games lists every game in the archive. Given the id of a
			game, it prints the game's moves and its final position
			instead.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := archive.Open(config.Archive)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				records, err := store.List()
				if err != nil {
					return err
				}

				if len(records) == 0 {
					fmt.Println("\x1b[31mNo Games Archived.\x1b[0m")
					return nil
				}

				fmt.Println("\x1b[32mArchived Games\x1b[0m:")
				fmt.Println()
				for _, record := range records {
					fmt.Printf("- %s\n", record)
				}

				return nil
			}

			record, err := store.Get(args[0])
			if err != nil {
				return fmt.Errorf("games %s: %w", args[0], err)
			}

			fmt.Printf("\x1b[34m%s\x1b[0m (%s, %s)\n", record.ID, record.Event, record.Date.Format("2006-01-02 15:04"))
			fmt.Printf("Red:    %s\nBlue:   %s\nResult: %s {%s}\n", record.Red, record.Blue, record.Result, record.Reason)
			fmt.Printf("Start:  %s\n\n", record.StartFEN)

			for i := 0; i < len(record.Moves); i += 2 {
				fmt.Printf("%3d. %s\n", i/2+1, strings.Join(record.Moves[i:min(i+2, len(record.Moves))], " "))
			}

			final, err := ataxx.New(record.FinalFEN)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s", final)
			return nil
		},
	}
}
