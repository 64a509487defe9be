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
// Package archive stores finished games in a badger database.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"laptudirm.com/x/taxi/internal/util"
	"laptudirm.com/x/taxi/pkg/match"
)

const (
	keyPrefix   = "game-"
	keySequence = "sequence/games"

	// number of ids leased from the sequence at once
	sequenceBandwidth = 16
)

var ErrNotFound = errors.New("archive: game not found")

// Record is an archived game.
type Record struct {
	ID    string    `json:"id"`
	Event string    `json:"event,omitempty"`
	Date  time.Time `json:"date"`

	Red  string `json:"red"`
	Blue string `json:"blue"`

	StartFEN string   `json:"start_fen"`
	FinalFEN string   `json:"final_fen"`
	Moves    []string `json:"moves"`

	// Result is from red's point of view.
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// NewRecord creates an unsaved Record of the given game.
func NewRecord(event string, game *match.Game) *Record {
	result := game.Result
	if game.Red != 0 {
		result = result.Flip()
	}

	return &Record{
		Event: event,
		Date:  time.Now().UTC(),

		Red:  game.Players[game.Red],
		Blue: game.Players[1-game.Red],

		StartFEN: game.StartFEN,
		FinalFEN: game.FinalFEN,
		Moves:    game.MoveList(),

		Result: result.String(),
		Reason: game.Reason,
	}
}

func (record *Record) String() string {
	return fmt.Sprintf(
		"%s: %s vs %s, %s {%s} in %d plies",
		record.ID, record.Red, record.Blue, record.Result, record.Reason, len(record.Moves),
	)
}

// Archive is a persistent store of game Records. It is safe for
// concurrent use.
type Archive struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens the archive in the given directory, creating it if needed.
// An empty directory opens a temporary in-memory archive.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	seq, err := db.GetSequence([]byte(keySequence), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Archive{db: db, seq: seq}, nil
}

// Close releases the unused ids and closes the database.
func (archive *Archive) Close() error {
	return errors.Join(archive.seq.Release(), archive.db.Close())
}

// Save stores the Record under a new id, which is returned and also set
// on the Record.
func (archive *Archive) Save(record *Record) (string, error) {
	n, err := archive.seq.Next()
	if err != nil {
		return "", err
	}

	record.ID = fmt.Sprintf("%s%d", keyPrefix, n+1)

	data, err := json.Marshal(record)
	if err != nil {
		return "", err
	}

	err = archive.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(record.ID), data)
	})

	return record.ID, err
}

// Get returns the Record with the given id.
func (archive *Archive) Get(id string) (*Record, error) {
	if !strings.HasPrefix(id, keyPrefix) {
		return nil, ErrNotFound
	}

	var record Record
	err := archive.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// List returns every Record in the archive, in natural order of ids.
func (archive *Archive) List() ([]*Record, error) {
	var records []*Record

	err := archive.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}

			records = append(records, &record)
		}

		return nil
	})

	slices.SortFunc(records, func(a, b *Record) int {
		return util.AlphanumCompare(a.ID, b.ID)
	})

	return records, err
}
