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
// Package match plays games of Ataxx between two players, which are
// either taxi's own engine or external engines speaking UAI.
package match

import (
	"laptudirm.com/x/taxi/pkg/ataxx"
)

// Turn is the state of a game handed to the player to move.
type Turn struct {
	// FEN is the position Moves are played from. It is reset to the
	// current position whenever the half-move clock is zeroed.
	FEN   string
	Moves []string // moves in UAI notation

	// Position is the current position. It must not be modified.
	Position *ataxx.Position

	// Clocks contains each color's remaining time.
	Clocks [ataxx.ColorN]TimeControl
}

// Player is a participant of a game.
type Player interface {
	Name() string

	// Go asks the Player for its move in the given Turn. The returned
	// move is validated by the caller.
	Go(turn *Turn) (string, error)

	Close() error
}

// EngineConfig describes a player. An empty Cmd selects taxi's own
// engine, searching at Depth; otherwise Cmd is run as a UAI engine.
type EngineConfig struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir"`
	Arg  string `yaml:"arg"`

	Protocol string `yaml:"protocol"`

	Stderr string `yaml:"stderr"`

	InitStr string `yaml:"init-string"`

	Options map[string]string `yaml:"options"`

	TimeC string `yaml:"tc"`
	Depth int    `yaml:"depth"`
}

// Internal reports whether the config describes taxi's own engine.
func (config EngineConfig) Internal() bool {
	return config.Cmd == ""
}

// NewPlayer starts the Player described by the given config.
func NewPlayer(config EngineConfig) (Player, error) {
	if config.Internal() {
		return NewInternalPlayer(config), nil
	}

	return StartEngine(config)
}
