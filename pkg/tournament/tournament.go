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
// Package tournament runs engine tournaments and matches, keeping score
// and optionally stopping early with a sequential probability ratio test.
package tournament

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/match"
	"laptudirm.com/x/taxi/pkg/stats"
	"laptudirm.com/x/taxi/pkg/tournament/schedule"
)

// NewTournament prepares a tournament. Finished games are saved to store
// if the config asks for archiving; store may be nil otherwise.
func NewTournament(config Config, store *archive.Archive) (*Tournament, error) {
	if err := config.setDefaults(); err != nil {
		return nil, err
	}

	if config.Archive && store == nil {
		return nil, fmt.Errorf("%w: archiving needs an archive", ErrConfig)
	}

	tour := Tournament{
		Config:  config,
		archive: store,

		Scores: make([]stats.WDL, len(config.Engines)),
		Pairs:  make([]stats.Pentanomial, len(config.Engines)),
	}

	var err error
	if tour.scheduler, err = schedule.New(config.Scheduler); err != nil {
		return nil, err
	}

	if config.Openings.File == "" {
		tour.openings = match.StartBook()
	} else if tour.openings, err = match.NewBook(config.Openings.File, config.Openings.Order); err != nil {
		return nil, err
	}

	return &tour, nil
}

type Tournament struct {
	Config Config

	scheduler schedule.Scheduler
	openings  *match.OpeningBook
	archive   *archive.Archive

	sync.Mutex

	Games    int
	Scores   []stats.WDL         // game results of every engine
	Pairs    []stats.Pentanomial // game pair results of every engine
	Decision stats.Decision      // SPRT decision, if any
}

// Pair is a game pair of an encounter. Both games start from the same
// opening with the players' colors swapped.
type Pair struct {
	Round, Number    int
	Player1, Player2 int

	Opening string
}

// Start runs the tournament until every game is played, the SPRT reaches
// a decision, or the context is cancelled.
func (tour *Tournament) Start(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(tour.Config.Concurrency)

	for _, pair := range tour.schedule() {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			decided, err := tour.RunPair(ctx, pair)
			if decided {
				stop()
			}

			return err
		})
	}

	err := group.Wait()
	tour.Report(logrus.StandardLogger().Out)
	return err
}

// schedule lists every game pair of the tournament.
func (tour *Tournament) schedule() []Pair {
	var pairs []Pair

	for round := 0; round < tour.Config.Rounds; round++ {
		encounters := schedule.Encounters(tour.scheduler, len(tour.Config.Engines))
		for _, encounter := range encounters {
			for i := 0; i < tour.Config.GamePairs; i++ {
				pairs = append(pairs, Pair{
					Round:   round + 1,
					Number:  len(pairs) + 1,
					Player1: encounter[0],
					Player2: encounter[1],
					Opening: tour.openings.Next(),
				})
			}
		}
	}

	return pairs
}

// RunPair plays both games of a pair and records their results. It
// reports whether the SPRT reached a decision. Pairs with an aborted
// game are not counted.
func (tour *Tournament) RunPair(ctx context.Context, pair Pair) (bool, error) {
	var games [2]*match.Game

	p1, p2 := pair.Player1, pair.Player2
	for i := range games {
		logrus.Infof(
			"\x1b[33mStarting\x1b[0m Round #%d Pair #%d: %s vs %s (\x1b[33m%s\x1b[0m)",
			pair.Round, pair.Number,
			tour.Config.Engines[p1].Name,
			tour.Config.Engines[p2].Name,
			pair.Opening,
		)

		game, err := match.Run(ctx, &match.Config{
			PositionFEN: pair.Opening,
			Engines: [2]match.EngineConfig{
				tour.Config.Engines[p1],
				tour.Config.Engines[p2],
			},
		})
		if err != nil {
			return false, err
		}

		if game.Aborted {
			return false, nil
		}

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Round #%d Pair #%d: %s",
			pair.Round, pair.Number, game,
		)

		if tour.Config.Archive {
			id, err := tour.archive.Save(archive.NewRecord(tour.Config.Event, game))
			if err != nil {
				return false, err
			}

			logrus.Debugf("saved game as %s", id)
		}

		games[i] = game

		// Switch sides.
		p1, p2 = p2, p1
	}

	// both results from player one's point of view
	return tour.record(pair, games[0].Result, games[1].Result.Flip()), nil
}

// record adds the results of a pair to the scores and reports whether the
// SPRT reached a decision.
func (tour *Tournament) record(pair Pair, result1, result2 match.Result) bool {
	tour.Lock()
	defer tour.Unlock()

	p1, p2 := pair.Player1, pair.Player2
	for _, result := range []match.Result{result1, result2} {
		tour.Games++
		tour.Scores[p1].Add(int(result))
		tour.Scores[p2].Add(int(result.Flip()))
	}

	sum := int(match.GetPairResult(result1, result2))
	tour.Pairs[p1].Add(sum)
	tour.Pairs[p2].Add(-sum)

	if tour.Games%10 == 0 {
		tour.report(logrus.StandardLogger().Out)
	}

	sprt := tour.Config.SPRT
	if sprt == nil {
		return false
	}

	llr := stats.PentaSPRT(tour.Pairs[0], sprt.Elo0, sprt.Elo1)
	tour.Decision = stats.Decide(llr, sprt.Alpha, sprt.Beta)

	logrus.WithFields(logrus.Fields{
		"llr":      fmt.Sprintf("%.2f", llr),
		"decision": tour.Decision,
	}).Info("sprt")

	return tour.Decision != stats.Continue
}

// Standing is an engine's line in the tournament table.
type Standing struct {
	Name  string
	Score stats.WDL
	Elo   stats.Interval
}

// Standings returns the standings of every engine, in config order.
func (tour *Tournament) Standings() []Standing {
	tour.Lock()
	defer tour.Unlock()

	return tour.standings()
}

func (tour *Tournament) standings() []Standing {
	standings := make([]Standing, len(tour.Config.Engines))
	for i, engine := range tour.Config.Engines {
		standings[i] = Standing{
			Name:  engine.Name,
			Score: tour.Scores[i],
			Elo:   stats.Elo(tour.Scores[i]),
		}
	}

	return standings
}

// Report writes the tournament table to w.
func (tour *Tournament) Report(w io.Writer) {
	tour.Lock()
	defer tour.Unlock()

	tour.report(w)
}

func (tour *Tournament) report(w io.Writer) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	for i, standing := range tour.standings() {
		score, elo := standing.Score, standing.Elo

		format := "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
		if tour.Config.Scheduler == "gauntlet" && i == 0 {
			if elo.Elo >= 0 {
				format = "║ \x1b[32m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			} else {
				format = "║ \x1b[31m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			}
		}

		fmt.Fprintf(
			w, format,
			i+1, standing.Name,
			elo.Elo, math.Max(elo.Upper-elo.Elo, elo.Elo-elo.Lower),
			score.Wins, score.Losses, score.Draws, score.Games(),
		)
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")

	if tour.Config.SPRT != nil {
		penta := tour.Pairs[0]
		fmt.Fprintf(w, "SPRT: %s, pairs %v\n", tour.Decision, penta)
	}
}
