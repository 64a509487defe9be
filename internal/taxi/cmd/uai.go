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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/taxi/pkg/uai"
)

func UAI() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uai",
		Short: "Speak the Universal Ataxx Interface on stdin and stdout",
		Long: heredoc.Doc(`uai runs taxi as a UAI engine, so that it can be used with
			match runners and graphical interfaces. The search depth can
			be changed with the Depth option.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return uai.NewClient(config.Engine, os.Stdout).Run(os.Stdin)
		},
	}

	engineFlags(cmd)
	return cmd
}
