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
	"context"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/tournament"
)

func Tournament() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament details-file",
		Short: "Run a tournament with different engines",
		Long: heredoc.Doc(`tournament runs the tournament described by the given yaml
			file. Engines without a cmd are taxi itself at the given
			depth; others are started as UAI engines.

			With an sprt section and two engines the match stops as soon
			as either hypothesis is accepted. Interrupting the command
			stops the tournament and prints the standings so far.`),
		Example: heredoc.Doc(`
			$ cat depth.yaml
			engines:
			  - name: depth-4
			    depth: 4
			  - name: depth-2
			    depth: 2
			game-pairs: 50
			concurrency: 4
			sprt: { elo0: 0, elo1: 20, alpha: 0.05, beta: 0.05 }
			$ taxi tournament depth.yaml
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tourConfig, err := tournament.LoadConfig(args[0])
			if err != nil {
				return err
			}

			var store *archive.Archive
			if tourConfig.Archive {
				if store, err = archive.Open(config.Archive); err != nil {
					return err
				}
				defer store.Close()
			}

			tour, err := tournament.NewTournament(tourConfig, store)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return tour.Start(ctx)
		},
	}
}
