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
package match

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
	"laptudirm.com/x/taxi/pkg/engine"
)

// InternalPlayer is taxi's own engine playing in-process.
type InternalPlayer struct {
	name   string
	engine *engine.Engine[*ataxx.Position]
}

var _ Player = (*InternalPlayer)(nil)

func NewInternalPlayer(config EngineConfig) *InternalPlayer {
	e := engine.New[*ataxx.Position](engine.Config{Depth: config.Depth})

	name := config.Name
	if name == "" {
		name = fmt.Sprintf("taxi-d%d", e.Config().Depth)
	}

	return &InternalPlayer{name: name, engine: e}
}

func (player *InternalPlayer) Name() string {
	return player.name
}

// Go searches the current position. If the search ends without a move,
// which happens when every reply leaves the opponent without one, the
// first legal move is played instead.
func (player *InternalPlayer) Go(turn *Turn) (string, error) {
	stm := turn.Position.SideToMove()

	move, err := player.engine.ChooseMove(turn.Position, stm)
	if errors.Is(err, engine.ErrNoMove) {
		if moves := engine.Enumerate(turn.Position, stm); len(moves) > 0 {
			logrus.WithFields(logrus.Fields{
				"player": player.name,
				"fen":    turn.Position.FEN(),
			}).Warn("search found no move, playing the first legal one")
			return moves[0].UAI(), nil
		}
	}

	if err != nil {
		return "", err
	}

	return move.UAI(), nil
}

func (player *InternalPlayer) Close() error {
	return nil
}
