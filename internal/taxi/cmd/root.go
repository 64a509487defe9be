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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "taxi",
		Short: "A fixed-depth alpha-beta Ataxx engine",
		Long: heredoc.Doc(`taxi picks Ataxx moves with a fixed-depth minimax search
			with alpha-beta pruning over a material evaluation.

			Besides answering single positions, taxi speaks the Universal
			Ataxx Interface, plays against humans in the terminal, runs
			engine tournaments, and serves moves over HTTP. Finished games
			are kept in an archive under taxi's data directory.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace or --debug is provided, raise the logging level.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}

			return common.EnsureDirectories()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show taxi's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().StringP("config", "c", common.ConfigFile, "Configuration file to use")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	root.CompletionOptions.DisableDefaultCmd = true

	// Register the various commands.
	root.AddCommand(BestMove())
	root.AddCommand(UAI())
	root.AddCommand(Play())
	root.AddCommand(Tournament())
	root.AddCommand(Games())
	root.AddCommand(Serve())
	root.AddCommand(Completion())

	return root
}

// loadConfig reads the configuration file named by the --config flag and
// applies the engine flags of the command, if it has any.
func loadConfig(cmd *cobra.Command) (common.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return common.Config{}, err
	}

	config, err := common.LoadConfig(path)
	if err != nil {
		return config, err
	}

	if flag := cmd.Flags().Lookup("depth"); flag != nil && flag.Changed {
		config.Engine.Depth, _ = cmd.Flags().GetInt("depth")
	}

	return config, nil
}

// engineFlags adds the flags which override the engine configuration.
func engineFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("depth", "D", 0, "Search depth in plies")
}
