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
package tournament

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/taxi/pkg/match"
)

// Config describes a tournament.
type Config struct {
	Event string `yaml:"event"`

	// The engines participating in the tournament.
	Engines []match.EngineConfig `yaml:"engines"`

	// Number of game pairs that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`     // Number of rounds to run the tournament for.
	GamePairs int `yaml:"game-pairs"` // Number of game pairs per encounter in every round.

	Openings struct {
		File  string `yaml:"file"`
		Order string `yaml:"order"` // sequential or random
	} `yaml:"openings"`

	// SPRT stops a match between two engines once either hypothesis is
	// accepted.
	SPRT *SPRTConfig `yaml:"sprt"`

	// Archive saves every finished game to the game archive.
	Archive bool `yaml:"archive"`
}

type SPRTConfig struct {
	Elo0, Elo1  float64 // The null and the alternate elo hypotheses.
	Alpha, Beta float64 // Confidence bounds for Error types I and II.
}

// LoadConfig reads a tournament config from a yaml file. Unknown fields
// are rejected.
func LoadConfig(path string) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("tournament %s: %w", path, err)
	}

	return config, nil
}

var ErrConfig = errors.New("new tour: invalid config")

// setDefaults fills in the unset fields and validates the config.
func (config *Config) setDefaults() error {
	if len(config.Engines) < 2 {
		return fmt.Errorf("%w: need at least two engines", ErrConfig)
	}

	if config.Event == "" {
		config.Event = "taxi tournament"
	}

	config.Concurrency = max(config.Concurrency, 1)
	config.Rounds = max(config.Rounds, 1)
	config.GamePairs = max(config.GamePairs, 1)

	for i := range config.Engines {
		if config.Engines[i].Name == "" {
			config.Engines[i].Name = fmt.Sprintf("engine-%d", i+1)
		}
	}

	if sprt := config.SPRT; sprt != nil {
		if len(config.Engines) != 2 {
			return fmt.Errorf("%w: sprt needs exactly two engines", ErrConfig)
		}

		if sprt.Alpha <= 0 || sprt.Alpha >= 1 || sprt.Beta <= 0 || sprt.Beta >= 1 {
			return fmt.Errorf("%w: sprt error bounds must be in (0, 1)", ErrConfig)
		}

		if sprt.Elo0 >= sprt.Elo1 {
			return fmt.Errorf("%w: sprt needs elo0 < elo1", ErrConfig)
		}
	}

	return nil
}
