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
// Package stats implements the statistics used to compare engines: Elo
// estimates with confidence intervals and the sequential probability
// ratio test, over both trinomial (per game) and pentanomial (per game
// pair) results.
package stats

import "math"

// WDL counts game results from one player's point of view.
type WDL struct {
	Wins, Draws, Losses int
}

// Add records a result, which is +1 for a win, 0 for a draw, and -1 for
// a loss.
func (wdl *WDL) Add(result int) {
	switch {
	case result > 0:
		wdl.Wins++
	case result < 0:
		wdl.Losses++
	default:
		wdl.Draws++
	}
}

func (wdl WDL) Games() int {
	return wdl.Wins + wdl.Draws + wdl.Losses
}

// Score returns the fraction of points scored, 0.5 if no game was played.
func (wdl WDL) Score() float64 {
	if wdl.Games() == 0 {
		return 0.5
	}

	return (float64(wdl.Wins) + float64(wdl.Draws)/2) / float64(wdl.Games())
}

// Pentanomial counts game pair results, indexed by the sum of the pair's
// results plus two: loss-loss, loss-draw, win-loss or draw-draw,
// win-draw, and win-win.
type Pentanomial [5]int

const (
	LL = iota
	LD
	DD
	WD
	WW
)

// Add records a pair whose results sum up to the given value in [-2, 2].
func (penta *Pentanomial) Add(pair int) {
	penta[pair+2]++
}

func (penta Pentanomial) Pairs() int {
	return penta[LL] + penta[LD] + penta[DD] + penta[WD] + penta[WW]
}

// Interval is an Elo estimate with its 95% confidence bounds.
type Interval struct {
	Lower, Elo, Upper float64
}

// Margin returns the half width of the confidence interval.
func (interval Interval) Margin() float64 {
	return (interval.Upper - interval.Lower) / 2
}

func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// scoreToElo converts an expected score into an Elo difference. Scores
// of 0 or 1 have no finite Elo and are reported as 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func nEloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
