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
	"strconv"
	"strings"
	"time"
)

// TimeControl is a player's clock. A zero Base means the player is not
// timed at all.
type TimeControl struct {
	MovesToGo int
	Base, Inc time.Duration
}

var ErrTimeControl = errors.New("parse tc: increment not found")

// ParseTime parses a time control of the form [moves/]base+inc, where
// base and inc are in seconds. The empty string and "inf" are parsed as
// an untimed clock.
func ParseTime(timeStr string) (TimeControl, error) {
	tc := TimeControl{MovesToGo: -1}

	if timeStr == "" || timeStr == "inf" {
		return tc, nil
	}

	movesStr, timeStr, found := strings.Cut(timeStr, "/")
	if found {
		var err error
		if tc.MovesToGo, err = strconv.Atoi(movesStr); err != nil {
			return TimeControl{}, fmt.Errorf("parse tc: %w", err)
		}
	} else {
		timeStr = movesStr
	}

	timeStr, incStr, found := strings.Cut(timeStr, "+")
	if !found {
		return TimeControl{}, ErrTimeControl
	}

	incs, err := strconv.ParseFloat(incStr, 64)
	if err != nil {
		return TimeControl{}, fmt.Errorf("parse tc: %w", err)
	}

	secs, err := strconv.ParseFloat(timeStr, 64)
	if err != nil {
		return TimeControl{}, fmt.Errorf("parse tc: %w", err)
	}

	if secs <= 0 || incs < 0 {
		return TimeControl{}, fmt.Errorf("parse tc: invalid time %s+%s", timeStr, incStr)
	}

	tc.Inc = time.Millisecond * time.Duration(incs*1000)
	tc.Base = time.Millisecond * time.Duration(secs*1000)
	return tc, nil
}

// Timed reports whether the clock is running out at all.
func (tc TimeControl) Timed() bool {
	return tc.Base > 0
}

// Charge subtracts the time spent on a move from the clock and reports
// whether the clock was still running. The increment is added only if
// the move was made in time.
func (tc *TimeControl) Charge(spent time.Duration) bool {
	if !tc.Timed() {
		return true
	}

	if spent > tc.Base {
		tc.Base = 0
		return false
	}

	tc.Base += tc.Inc - spent
	return true
}

func (tc TimeControl) String() string {
	if !tc.Timed() {
		return "inf"
	}

	s := fmt.Sprintf("%g+%g", tc.Base.Seconds(), tc.Inc.Seconds())
	if tc.MovesToGo > 0 {
		s = fmt.Sprintf("%d/%s", tc.MovesToGo, s)
	}

	return s
}
