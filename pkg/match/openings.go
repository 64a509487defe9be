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
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"laptudirm.com/x/taxi/pkg/ataxx"
)

var ErrEmptyBook = errors.New("opening book: no positions")

// NewBook reads an opening book of newline separated FENs. Blank lines
// are skipped and every entry must be a valid position. The strategy is
// either "sequential" (the default) or "random".
func NewBook(name string, strategy string) (*OpeningBook, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ParseBook(string(file), strategy)
}

// ParseBook is NewBook over an in-memory book.
func ParseBook(data string, strategy string) (*OpeningBook, error) {
	book := OpeningBook{strategy: strategy, current: -1}

	for i, line := range strings.Split(data, "\n") {
		entry := strings.Trim(line, "\n\r\t ")
		if entry == "" {
			continue
		}

		if _, err := ataxx.New(entry); err != nil {
			return nil, fmt.Errorf("opening book line %d: %w", i+1, err)
		}

		book.entries = append(book.entries, entry)
	}

	if len(book.entries) == 0 {
		return nil, ErrEmptyBook
	}

	return &book, nil
}

// StartBook returns a book with the standard start position only.
func StartBook() *OpeningBook {
	return &OpeningBook{entries: []string{ataxx.StartFEN}, current: -1}
}

// OpeningBook hands out opening positions. It is safe for concurrent use.
type OpeningBook struct {
	sync.Mutex

	entries  []string
	strategy string
	current  int
}

// Next advances the book and returns the new current opening.
func (book *OpeningBook) Next() string {
	book.Lock()
	defer book.Unlock()

	switch book.strategy {
	case "random":
		book.current = rand.IntN(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}

	return book.entries[book.current]
}

// Len returns the number of openings in the book.
func (book *OpeningBook) Len() int {
	return len(book.entries)
}
