// file: internals/features/school/timetable/timeslot/timeslot_test.go
package timeslot

import "testing"

func TestDayLayoutOrdered(t *testing.T) {
	slots := Slots()
	if len(slots) == 0 {
		t.Fatal("empty day layout")
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start < slots[i-1].End {
			t.Fatalf("slot %d starts at %d before previous ends at %d", i, slots[i].Start, slots[i-1].End)
		}
	}
	breaks, lunches := 0, 0
	for _, s := range slots {
		switch s.Kind {
		case SlotBreak:
			breaks++
		case SlotLunch:
			lunches++
		}
	}
	if breaks != 1 || lunches != 1 {
		t.Fatalf("want exactly one break and one lunch, got %d and %d", breaks, lunches)
	}
}

func TestOpeningClosing(t *testing.T) {
	if got := Opening(); got != 9*60+45 {
		t.Errorf("Opening() = %d, want %d", got, 9*60+45)
	}
	if got := Closing(); got != 17*60+20 {
		t.Errorf("Closing() = %d, want %d", got, 17*60+20)
	}
}

func TestLunchWindow(t *testing.T) {
	if LunchStart != 13*60 || LunchEnd != 14*60 {
		t.Fatalf("lunch window [%d,%d), want [780,840)", LunchStart, LunchEnd)
	}
	for _, s := range Teaching() {
		if s.Start < LunchEnd && LunchStart < s.End {
			t.Fatalf("teaching slot %s overlaps lunch", s.Label())
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		startMin  int
		tolerance int
		wantStart int
		wantOK    bool
	}{
		{"exact first slot", 9*60 + 45, DefaultToleranceMin, 9*60 + 45, true},
		{"exact afternoon slot", 14 * 60, DefaultToleranceMin, 14 * 60, true},
		{"drift within tolerance", 9*60 + 47, DefaultToleranceMin, 9*60 + 45, true},
		{"drift at tolerance edge", 9*60 + 50, DefaultToleranceMin, 9*60 + 45, true},
		{"drift beyond tolerance", 9*60 + 52, DefaultToleranceMin, 0, false},
		{"inside lunch", 13*60 + 30, DefaultToleranceMin, 0, false},
		{"before opening", 8 * 60, DefaultToleranceMin, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := Resolve(tt.startMin, tt.tolerance)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%d) ok = %v, want %v", tt.startMin, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			s := Slots()[idx]
			if s.Kind != SlotTeaching {
				t.Fatalf("Resolve(%d) landed on pseudo-slot %s", tt.startMin, s.Kind)
			}
			if s.Start != tt.wantStart {
				t.Errorf("Resolve(%d) slot start = %d, want %d", tt.startMin, s.Start, tt.wantStart)
			}
		})
	}
}

func TestNextTeachingSkipsPseudoSlots(t *testing.T) {
	// 10:35 slot is followed by the short break; next teaching is 11:30.
	idx, ok := Resolve(10*60+35, 0)
	if !ok {
		t.Fatal("10:35 slot missing")
	}
	next, ok := NextTeaching(idx)
	if !ok {
		t.Fatal("10:35 slot should have a successor")
	}
	if got := Slots()[next].Start; got != 11*60+30 {
		t.Errorf("next teaching after 10:35 starts at %d, want %d", got, 11*60+30)
	}

	// 12:20 slot is followed by lunch; next teaching is 14:00.
	idx, _ = Resolve(12*60+20, 0)
	next, ok = NextTeaching(idx)
	if !ok {
		t.Fatal("12:20 slot should have a successor")
	}
	if got := Slots()[next].Start; got != 14*60 {
		t.Errorf("next teaching after 12:20 starts at %d, want %d", got, 14*60)
	}
}

func TestNextTeachingAtEndOfDay(t *testing.T) {
	idx, ok := Resolve(16*60+30, 0)
	if !ok {
		t.Fatal("16:30 slot missing")
	}
	if _, ok := NextTeaching(idx); ok {
		t.Error("last teaching slot must have no successor")
	}
}

func TestWeekdays(t *testing.T) {
	days := Weekdays()
	if len(days) != 6 {
		t.Fatalf("want 6 teaching days, got %d", len(days))
	}
	if WeekdayName(Monday) != "Monday" || WeekdayName(Saturday) != "Saturday" {
		t.Error("weekday names wrong")
	}
	if ValidWeekday(0) || ValidWeekday(7) {
		t.Error("0 and 7 are not teaching days")
	}
}
