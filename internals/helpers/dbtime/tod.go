// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time-of-day for Postgres TIME columns (date & zone dropped).
type Tod struct{ time.Time }

// From builds a Tod from a time.Time (keeps HH:mm:ss, drops date & zone).
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// FromMinutes builds a Tod from minutes-since-midnight.
func FromMinutes(m int) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC),
	}
}

// Parse builds a Tod from "HH:MM[:SS]" or a full RFC3339 timestamp.
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// Minutes is the canonical minutes-since-midnight representation.
// Every interval comparison in the conflict engine uses this value.
func (t Tod) Minutes() int {
	return t.Hour()*60 + t.Minute()
}

// Scan accepts time.Time or string ("HH:MM[:SS]")
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = x
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	// full timestamp → keep only the clock part, the date component is ignored
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = time.Date(0, 1, 1, ts.Hour(), ts.Minute(), ts.Second(), 0, time.UTC)
		return nil
	}
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

// Value sends "HH:MM:SS" so Postgres TIME understands it
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
