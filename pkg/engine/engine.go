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
// Package engine implements a fixed-depth minimax search with alpha-beta
// pruning which picks moves for an automated Ataxx player.
package engine

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

const (
	// DefaultDepth is the search depth used when none is configured.
	DefaultDepth = 4

	// WinningValue is the magnitude of a won position, before the
	// remaining search depth is added to it.
	WinningValue = math.MaxInt32 - 20

	// Infinity is larger than any score the evaluator can produce.
	Infinity = math.MaxInt32
)

var (
	// ErrNoMove is returned when a search which should have found a
	// move at the root did not record one.
	ErrNoMove = errors.New("engine: search found no move at the root")

	// ErrNotToMove is returned when asked to move for the side which is
	// not to move.
	ErrNotToMove = errors.New("engine: color is not the side to move")
)

// Config contains the tunable parameters of an Engine.
type Config struct {
	// Depth is the fixed number of plies searched for every move.
	Depth int `yaml:"depth"`
}

// DefaultConfig returns the default Engine configuration.
func DefaultConfig() Config {
	return Config{Depth: DefaultDepth}
}

// Engine picks moves for positions of type P. An Engine only holds its
// configuration, so it may be used from several goroutines at once.
type Engine[P Position[P]] struct {
	config Config
}

// New creates a new Engine with the given configuration. Depths below one
// are replaced with DefaultDepth.
func New[P Position[P]](config Config) *Engine[P] {
	if config.Depth < 1 {
		config.Depth = DefaultDepth
	}

	return &Engine[P]{config: config}
}

// Config returns the configuration of the Engine.
func (engine *Engine[P]) Config() Config {
	return engine.config
}

// Result is the outcome of a single top-level search.
type Result struct {
	Move  ataxx.Move // best move found, ataxx.Pass if none
	Score int        // score of the root from the mover's point of view
	Nodes int        // number of positions visited
	Found bool       // whether the root recorded a move
}

// Search runs a full-window search of the position for the given color,
// which must be the side to move, and returns its result. The position
// itself is never modified.
func (engine *Engine[P]) Search(pos P, color ataxx.Color) Result {
	s := newSearcher[P](engine.config, color)

	score, move, found := s.search(
		pos.Clone(), engine.config.Depth, true,
		s.ogSense, -Infinity, Infinity,
	)

	return Result{
		Move:  move,
		Score: score,
		Nodes: s.nodes,
		Found: found,
	}
}

// Think decides on a move for the given color. If the color has no legal
// move a pass is returned without searching. Otherwise the color must be
// the side to move, and the search must record a move.
func (engine *Engine[P]) Think(pos P, color ataxx.Color) (Result, error) {
	if !pos.CanMove(color) {
		logrus.WithField("color", color).Debug("no legal moves, passing")
		return Result{Move: ataxx.Pass, Found: true}, nil
	}

	if pos.SideToMove() != color {
		return Result{Move: ataxx.Pass}, ErrNotToMove
	}

	result := engine.Search(pos, color)

	logrus.WithFields(logrus.Fields{
		"color": color,
		"depth": engine.config.Depth,
		"nodes": result.Nodes,
		"score": result.Score,
		"move":  result.Move,
	}).Debug("search finished")

	if !result.Found {
		return result, ErrNoMove
	}

	return result, nil
}

// ChooseMove returns the move the engine plays for the given color, or
// ataxx.Pass if the color has no legal move.
func (engine *Engine[P]) ChooseMove(pos P, color ataxx.Color) (ataxx.Move, error) {
	result, err := engine.Think(pos, color)
	return result.Move, err
}
