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
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		tc   string
		want TimeControl
		err  bool
	}{
		{"10+0.1", TimeControl{MovesToGo: -1, Base: 10 * time.Second, Inc: 100 * time.Millisecond}, false},
		{"40/60+0", TimeControl{MovesToGo: 40, Base: time.Minute}, false},
		{"0.5+0.05", TimeControl{MovesToGo: -1, Base: 500 * time.Millisecond, Inc: 50 * time.Millisecond}, false},
		{"", TimeControl{MovesToGo: -1}, false},
		{"inf", TimeControl{MovesToGo: -1}, false},
		{"10", TimeControl{}, true},
		{"x/10+1", TimeControl{}, true},
		{"10+y", TimeControl{}, true},
		{"0+1", TimeControl{}, true},
		{"10+-1", TimeControl{}, true},
	}

	for _, test := range tests {
		got, err := ParseTime(test.tc)
		if (err != nil) != test.err {
			t.Errorf("ParseTime(%q): error %v, want error %v", test.tc, err, test.err)
			continue
		}

		if got != test.want {
			t.Errorf("ParseTime(%q) = %+v, want %+v", test.tc, got, test.want)
		}
	}
}

func TestCharge(t *testing.T) {
	tc := TimeControl{Base: time.Second, Inc: 100 * time.Millisecond}

	if !tc.Charge(400 * time.Millisecond) {
		t.Fatal("move in time reported as late")
	}
	if tc.Base != 700*time.Millisecond {
		t.Errorf("remaining %v, want 700ms", tc.Base)
	}

	if tc.Charge(time.Second) {
		t.Error("late move reported as in time")
	}

	var untimed TimeControl
	if !untimed.Charge(time.Hour) || untimed.Timed() {
		t.Error("untimed clock ran out")
	}
}

func TestTimeControlString(t *testing.T) {
	tests := map[string]string{
		"10+0.1":  "10+0.1",
		"40/60+0": "40/60+0",
		"":        "inf",
	}

	for tc, want := range tests {
		parsed, err := ParseTime(tc)
		if err != nil {
			t.Fatal(err)
		}

		if got := parsed.String(); got != want {
			t.Errorf("%q: String() = %q, want %q", tc, got, want)
		}
	}
}
