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
package engine

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

// searcher holds the state of a single top-level search. Scores are
// always from the point of view of color, whose sign is ogSense: +1 if
// color is red and -1 if it is blue. The sense threaded through the
// recursion alternates every ply, and a node maximizes exactly when its
// sense equals ogSense.
type searcher[P Position[P]] struct {
	config Config

	color   ataxx.Color
	ogSense int

	nodes int
}

func newSearcher[P Position[P]](config Config, color ataxx.Color) *searcher[P] {
	s := &searcher[P]{
		config:  config,
		color:   color,
		ogSense: 1,
	}

	if color == ataxx.Blue {
		s.ogSense = -1
	}

	return s
}

// search returns the score of pos searched to the given depth within the
// (alpha, beta) window. Root frames also return the best move found and
// whether one was found at all; other frames never report a move.
func (s *searcher[P]) search(pos P, depth int, root bool, sense, alpha, beta int) (int, ataxx.Move, bool) {
	s.nodes++

	if _, over := pos.Winner(); depth == 0 || over {
		return Evaluate(pos, s.color, WinningValue+depth), ataxx.Pass, false
	}

	maximizing := sense == s.ogSense

	mover := s.color
	if !maximizing {
		mover = s.color.Other()
	}

	moves := Enumerate(pos, mover)

	// An empty move list leaves the sentinel untouched.
	bestScore := -Infinity
	bestMove, found := ataxx.Pass, false

	for i := 0; alpha < beta && i < len(moves); i++ {
		child := pos.Clone()
		child.MakeMove(moves[i])

		// A win in one always beats whatever the rest of the tree holds.
		if depth == s.config.Depth {
			if winner, over := child.Winner(); over && winner == s.color {
				s.nodes++
				return Infinity, moves[i], root
			}
		}

		score, _, _ := s.search(child, depth-1, false, -sense, alpha, beta)

		if root {
			logrus.WithFields(logrus.Fields{
				"move":  moves[i],
				"score": score,
			}).Trace("searched root move")
		}

		if maximizing {
			if score > alpha {
				alpha = score
			}

			if score > bestScore {
				bestScore = score
				if root {
					bestMove, found = moves[i], true
				}
			}
		} else {
			if score < beta {
				beta = score
			}

			// The stored best is the raw score, but a minimizing node
			// compares it against sense*score.
			if sense*score > bestScore {
				bestScore = score
				if root {
					bestMove, found = moves[i], true
				}
			}
		}
	}

	return bestScore, bestMove, found
}
