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
package stats

import "math"

// Elo estimates the Elo difference from game results.
func Elo(wdl WDL) Interval {
	N := float64(wdl.Games()) + 1.5 // total number of games

	w := (float64(wdl.Wins) + 0.5) / N   // measured win probability
	d := (float64(wdl.Draws) + 0.5) / N  // measured draw probability
	l := (float64(wdl.Losses) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	return Interval{
		Lower: scoreToElo(mu + phiInv(0.025)*sigma),
		Elo:   scoreToElo(mu),
		Upper: scoreToElo(mu + phiInv(0.975)*sigma),
	}
}

// PentaElo estimates the Elo difference from game pair results.
func PentaElo(penta Pentanomial) Interval {
	N := float64(penta.Pairs()) + 2.5 // total number of pairs

	ll := (float64(penta[LL]) + 0.5) / N // measured loss-loss probability
	ld := (float64(penta[LD]) + 0.5) / N // measured loss-draw probability
	dd := (float64(penta[DD]) + 0.5) / N // measured win-loss/draw-draw probability
	wd := (float64(penta[WD]) + 0.5) / N // measured win-draw probability
	ww := (float64(penta[WW]) + 0.5) / N // measured win-win probability

	// empirical mean of random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation of the random variable
	sigma := math.Sqrt(
		ww*math.Pow(1-mu, 2)+
			wd*math.Pow(0.75-mu, 2)+
			dd*math.Pow(0.50-mu, 2)+
			ld*math.Pow(0.25-mu, 2)+
			ll*math.Pow(0.00-mu, 2),
	) / math.Sqrt(N)

	return Interval{
		Lower: scoreToElo(mu + phiInv(0.025)*sigma),
		Elo:   scoreToElo(mu),
		Upper: scoreToElo(mu + phiInv(0.975)*sigma),
	}
}
