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
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"

	"laptudirm.com/x/taxi/pkg/archive"
	"laptudirm.com/x/taxi/pkg/match"
	"laptudirm.com/x/taxi/pkg/stats"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	data := heredoc.Doc(`
		event: depth test
		engines:
		  - name: shallow
		    depth: 1
		  - name: deep
		    depth: 3
		concurrency: 4
		scheduler: gauntlet
		rounds: 2
		game-pairs: 5
		openings:
		  file: openings.txt
		  order: random
		sprt:
		  elo0: 0
		  elo1: 10
		  alpha: 0.05
		  beta: 0.1
		archive: true
	`)

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if config.Event != "depth test" || len(config.Engines) != 2 || config.Engines[1].Depth != 3 {
		t.Errorf("unexpected engines in %+v", config)
	}

	if config.Concurrency != 4 || config.Scheduler != "gauntlet" || config.Rounds != 2 || config.GamePairs != 5 {
		t.Errorf("unexpected schedule in %+v", config)
	}

	if config.Openings.File != "openings.txt" || config.Openings.Order != "random" || !config.Archive {
		t.Errorf("unexpected openings in %+v", config)
	}

	if config.SPRT == nil || *config.SPRT != (SPRTConfig{Elo0: 0, Elo1: 10, Alpha: 0.05, Beta: 0.1}) {
		t.Errorf("unexpected sprt %+v", config.SPRT)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	if err := os.WriteFile(path, []byte("engines: []\npgn-out: games.pgn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestConfigDefaults(t *testing.T) {
	two := []match.EngineConfig{{Depth: 1}, {Depth: 2}}

	tests := []struct {
		name   string
		config Config
		valid  bool
	}{
		{"defaults", Config{Engines: two}, true},
		{"one engine", Config{Engines: two[:1]}, false},
		{"sprt", Config{Engines: two, SPRT: &SPRTConfig{Elo1: 5, Alpha: 0.05, Beta: 0.05}}, true},
		{"sprt bounds", Config{Engines: two, SPRT: &SPRTConfig{Elo0: 5, Elo1: 5, Alpha: 0.05, Beta: 0.05}}, false},
		{"sprt errors", Config{Engines: two, SPRT: &SPRTConfig{Elo1: 5, Alpha: 0, Beta: 0.05}}, false},
		{"sprt engines", Config{Engines: append(two, two...), SPRT: &SPRTConfig{Elo1: 5, Alpha: 0.05, Beta: 0.05}}, false},
	}

	for _, test := range tests {
		err := test.config.setDefaults()
		if (err == nil) != test.valid {
			t.Errorf("%s: got error %v, want valid %v", test.name, err, test.valid)
			continue
		}

		if err != nil && !errors.Is(err, ErrConfig) {
			t.Errorf("%s: error %v is not a config error", test.name, err)
		}
	}

	config := Config{Engines: []match.EngineConfig{{Depth: 1}, {Name: "named"}}}
	if err := config.setDefaults(); err != nil {
		t.Fatal(err)
	}

	if config.Concurrency != 1 || config.Rounds != 1 || config.GamePairs != 1 {
		t.Errorf("defaults not applied: %+v", config)
	}

	if config.Engines[0].Name != "engine-1" || config.Engines[1].Name != "named" {
		t.Errorf("engine names %q and %q", config.Engines[0].Name, config.Engines[1].Name)
	}
}

func TestTournament(t *testing.T) {
	store, err := archive.Open("")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	tour, err := NewTournament(Config{
		Event: "round robin",
		Engines: []match.EngineConfig{
			{Name: "one", Depth: 1},
			{Name: "two", Depth: 2},
			{Name: "three", Depth: 2},
		},
		Concurrency: 2,
		Archive:     true,
	}, store)
	if err != nil {
		t.Fatal(err)
	}

	if err := tour.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	// three encounters of one pair each
	if tour.Games != 6 {
		t.Errorf("played %d games, want 6", tour.Games)
	}

	var wins, losses, games int
	for _, standing := range tour.Standings() {
		wins += standing.Score.Wins
		losses += standing.Score.Losses
		games += standing.Score.Games()

		if standing.Score.Games() != 4 {
			t.Errorf("%s played %d games, want 4", standing.Name, standing.Score.Games())
		}
	}

	if wins != losses || games != 12 {
		t.Errorf("standings do not add up: %d wins, %d losses, %d games", wins, losses, games)
	}

	records, err := store.List()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 6 {
		t.Errorf("archived %d games, want 6", len(records))
	}

	for _, record := range records {
		if record.Event != "round robin" {
			t.Errorf("%s has event %q", record.ID, record.Event)
		}
	}

	var report bytes.Buffer
	tour.Report(&report)
	for _, name := range []string{"one", "two", "three"} {
		if !strings.Contains(report.String(), name) {
			t.Errorf("report is missing %s:\n%s", name, report.String())
		}
	}
}

func TestTournamentCancelled(t *testing.T) {
	tour, err := NewTournament(Config{
		Engines: []match.EngineConfig{{Depth: 1}, {Depth: 1}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tour.Start(ctx); err != nil {
		t.Fatal(err)
	}

	if tour.Games != 0 {
		t.Errorf("played %d games after cancellation", tour.Games)
	}
}

func TestArchiveNeeded(t *testing.T) {
	_, err := NewTournament(Config{
		Engines: []match.EngineConfig{{Depth: 1}, {Depth: 1}},
		Archive: true,
	}, nil)

	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want %v", err, ErrConfig)
	}
}

func TestSPRTDecision(t *testing.T) {
	tests := []struct {
		name     string
		pattern  [3][2]match.Result
		decision stats.Decision
	}{
		{
			name: "stronger",
			pattern: [3][2]match.Result{
				{match.Win, match.Win},
				{match.Win, match.Draw},
				{match.Draw, match.Draw},
			},
			decision: stats.AcceptH1,
		},
		{
			name: "weaker",
			pattern: [3][2]match.Result{
				{match.Loss, match.Loss},
				{match.Loss, match.Draw},
				{match.Draw, match.Draw},
			},
			decision: stats.AcceptH0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tour, err := NewTournament(Config{
				Engines: []match.EngineConfig{{Depth: 1}, {Depth: 2}},
				SPRT:    &SPRTConfig{Elo0: 0, Elo1: 20, Alpha: 0.05, Beta: 0.05},
			}, nil)
			if err != nil {
				t.Fatal(err)
			}

			pair := Pair{Player1: 0, Player2: 1}

			pairs := 0
			for !tour.record(pair, test.pattern[pairs%3][0], test.pattern[pairs%3][1]) {
				pairs++
				if pairs > 200 {
					t.Fatal("no decision after 200 pairs")
				}
			}

			if pairs < 10 {
				t.Errorf("decided after only %d pairs", pairs)
			}

			if tour.Decision != test.decision {
				t.Errorf("decision %s, want %s", tour.Decision, test.decision)
			}
		})
	}
}
