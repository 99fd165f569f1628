// file: internals/features/school/timetable/timeslot/timeslot.go
package timeslot

import "fmt"

/* =========================
   Weekdays (Mon..Sat)
   ========================= */

const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

var weekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Weekdays lists the six teaching days in order.
func Weekdays() []int {
	return []int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// WeekdayName returns the display name, "" for an unknown value.
func WeekdayName(d int) string { return weekdayNames[d] }

// ValidWeekday reports whether d is one of the six teaching days.
func ValidWeekday(d int) bool { return d >= Monday && d <= Saturday }

/* =========================
   Day layout
   ========================= */

type SlotKind string

const (
	SlotTeaching SlotKind = "teaching"
	SlotBreak    SlotKind = "break"
	SlotLunch    SlotKind = "lunch"
)

// Slot is one window of the teaching day. Start/End are minutes since
// midnight, half-open [Start,End).
type Slot struct {
	Kind  SlotKind `json:"kind"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// Label renders "HH:MM-HH:MM" for display rows.
func (s Slot) Label() string {
	return Clock(s.Start) + "-" + Clock(s.End)
}

// Clock renders minutes-since-midnight as "HH:MM".
func Clock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// The institution-wide day layout, identical for all six weekdays.
// Two pseudo-slots are fixed and never assignable: the short break and
// the lunch window. Immutable after process start.
var daySlots = []Slot{
	{SlotTeaching, 9*60 + 45, 10*60 + 35},
	{SlotTeaching, 10*60 + 35, 11*60 + 25},
	{SlotBreak, 11*60 + 25, 11*60 + 30},
	{SlotTeaching, 11*60 + 30, 12*60 + 20},
	{SlotTeaching, 12*60 + 20, 13 * 60},
	{SlotLunch, 13 * 60, 14 * 60},
	{SlotTeaching, 14 * 60, 14*60 + 50},
	{SlotTeaching, 14*60 + 50, 15*60 + 40},
	{SlotTeaching, 15*60 + 40, 16*60 + 30},
	{SlotTeaching, 16*60 + 30, 17*60 + 20},
}

const (
	// LunchStart/LunchEnd guard the fixed [13:00,14:00) lunch window.
	LunchStart = 13 * 60
	LunchEnd   = 14 * 60

	// DefaultToleranceMin absorbs minor drift in stored start times when
	// snapping a session onto a slot. Migration-era data shim; keep as is.
	DefaultToleranceMin = 5
)

// Slots returns the full ordered day layout including pseudo-slots.
func Slots() []Slot {
	out := make([]Slot, len(daySlots))
	copy(out, daySlots)
	return out
}

// SlotCount is the number of rows in a day column (pseudo-slots included).
func SlotCount() int { return len(daySlots) }

// Teaching returns only the assignable windows, in day order.
func Teaching() []Slot {
	out := make([]Slot, 0, len(daySlots))
	for _, s := range daySlots {
		if s.Kind == SlotTeaching {
			out = append(out, s)
		}
	}
	return out
}

// Opening is the first assignable minute of the day.
func Opening() int {
	for _, s := range daySlots {
		if s.Kind == SlotTeaching {
			return s.Start
		}
	}
	return 0
}

// Closing is the last assignable minute of the day.
func Closing() int {
	for i := len(daySlots) - 1; i >= 0; i-- {
		if daySlots[i].Kind == SlotTeaching {
			return daySlots[i].End
		}
	}
	return 0
}

// Resolve maps a start time (minutes since midnight) to the index of a
// teaching slot in Slots(): exact start match first, otherwise the nearest
// teaching slot within tolerance minutes. ok=false when nothing matches.
func Resolve(startMin, tolerance int) (idx int, ok bool) {
	for i, s := range daySlots {
		if s.Kind == SlotTeaching && s.Start == startMin {
			return i, true
		}
	}
	best, bestDiff := -1, tolerance+1
	for i, s := range daySlots {
		if s.Kind != SlotTeaching {
			continue
		}
		diff := s.Start - startMin
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// NextTeaching returns the index of the teaching slot that follows the
// teaching slot at idx, skipping pseudo-slots. ok=false at the last
// teaching slot of the day.
func NextTeaching(idx int) (next int, ok bool) {
	for i := idx + 1; i < len(daySlots); i++ {
		if daySlots[i].Kind == SlotTeaching {
			return i, true
		}
	}
	return 0, false
}
