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
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/server"
)

func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve moves and archived games over HTTP",
		Long: heredoc.Doc(`serve starts an HTTP server with the following endpoints:

				GET  /api/ping
				POST /api/move        {"fen": "...", "depth": 4}
				GET  /api/games
				GET  /api/games/{id}

			The server shuts down gracefully on an interrupt.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if flag := cmd.Flags().Lookup("address"); flag.Changed {
				config.Server.Address = flag.Value.String()
			}

			var store *archive.Archive
			if noArchive, _ := cmd.Flags().GetBool("no-archive"); !noArchive {
				if store, err = archive.Open(config.Archive); err != nil {
					return err
				}
				defer store.Close()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(config.Engine, store).ListenAndServe(ctx, config.Server.Address)
		},
	}

	engineFlags(cmd)
	cmd.Flags().StringP("address", "a", "", "Address to listen on")
	cmd.Flags().Bool("no-archive", false, "Don't serve the game archive")

	return cmd
}
