// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"09:45", 9*60 + 45, false},
		{"09:45:00", 9*60 + 45, false},
		{" 13:00 ", 13 * 60, false},
		{"2024-09-02T10:35:00Z", 10*60 + 35, false},
		{"2024-09-02T10:35:00+07:00", 10*60 + 35, false},
		{"", 0, true},
		{"25:00", 0, true},
		{"9:45", 0, true},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got.Minutes() != c.wantMin {
			t.Errorf("Parse(%q).Minutes() = %d, want %d", c.in, got.Minutes(), c.wantMin)
		}
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 9*60 + 45, 13 * 60, 17*60 + 20} {
		if got := FromMinutes(m).Minutes(); got != m {
			t.Errorf("FromMinutes(%d).Minutes() = %d", m, got)
		}
	}
}

func TestScanValue(t *testing.T) {
	var tod Tod
	if err := tod.Scan("10:35:00"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if tod.Minutes() != 10*60+35 {
		t.Fatalf("Scan string minutes = %d", tod.Minutes())
	}

	if err := tod.Scan(time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time: %v", err)
	}
	if tod.Minutes() != 14*60 {
		t.Fatalf("Scan time.Time minutes = %d", tod.Minutes())
	}

	v, err := FromMinutes(9*60 + 45).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "09:45:00" {
		t.Fatalf("Value = %v, want 09:45:00", v)
	}
}

func TestJSONCodec(t *testing.T) {
	b, err := FromMinutes(11*60 + 25).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"11:25:00"` {
		t.Fatalf("MarshalJSON = %s", b)
	}

	var tod Tod
	if err := tod.UnmarshalJSON([]byte(`"12:20"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if tod.Minutes() != 12*60+20 {
		t.Fatalf("UnmarshalJSON minutes = %d", tod.Minutes())
	}
}
