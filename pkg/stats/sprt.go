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

// SPRT returns the log-likelihood ratio of the hypothesis that the Elo
// difference is elo1 against it being elo0, using game results.
func SPRT(wdl WDL, elo0, elo1 float64) (llr float64) {
	// Dirichlet([0.5, 0.5, 0.5]) prior
	w := float64(wdl.Wins) + 0.5
	d := float64(wdl.Draws) + 0.5
	l := float64(wdl.Losses) + 0.5

	N := w + d + l // total number of games
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// PentaSPRT is SPRT over game pair results, where elo0 and elo1 are
// normalized Elo bounds.
func PentaSPRT(penta Pentanomial, elo0, elo1 float64) (llr float64) {
	N := float64(penta.Pairs()) + 2.5 // total number of pairs

	ll := (float64(penta[LL]) + 0.5) / N // measured loss-loss probability
	ld := (float64(penta[LD]) + 0.5) / N // measured loss-draw probability
	dd := (float64(penta[DD]) + 0.5) / N // measured win-loss/draw-draw probability
	wd := (float64(penta[WD]) + 0.5) / N // measured win-draw probability
	ww := (float64(penta[WW]) + 0.5) / N // measured win-win probability

	deviation := func(mu float64) float64 {
		return ww*math.Pow(1-mu, 2) +
			wd*math.Pow(0.75-mu, 2) +
			dd*math.Pow(0.50-mu, 2) +
			ld*math.Pow(0.25-mu, 2) +
			ll*math.Pow(0.00-mu, 2)
	}

	// empirical mean and standard deviation (times sqrt N) of the
	// random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld
	r := math.Sqrt(deviation(mu))

	// deviation to the score bounds
	r0 := deviation(nEloToScore(elo0, r))
	r1 := deviation(nEloToScore(elo1, r))

	if r0 == 0 || r1 == 0 {
		return 0
	}

	// simplified approximation of the llr, see
	// http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
	return 0.5 * N * math.Log(r0/r1)
}

// Decision is the state of a running SPRT.
type Decision int

const (
	Continue Decision = iota
	AcceptH0
	AcceptH1
)

func (decision Decision) String() string {
	switch decision {
	case AcceptH0:
		return "H0 accepted"
	case AcceptH1:
		return "H1 accepted"
	default:
		return "continue"
	}
}

// Decide compares the llr against the stopping bounds of the given
// error probabilities.
func Decide(llr, alpha, beta float64) Decision {
	lower, upper := StoppingBounds(alpha, beta)

	switch {
	case llr >= upper:
		return AcceptH1
	case llr <= lower:
		return AcceptH0
	default:
		return Continue
	}
}
