// file: internals/features/school/timetable/grid/grid_test.go
package grid

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/features/school/timetable/timeslot"
)

func hm(h, m int) int { return h*60 + m }

func slotIndexByStart(t *testing.T, g *Grid, start int) int {
	t.Helper()
	for i, s := range g.Slots {
		if s.Kind == timeslot.SlotTeaching && s.Start == start {
			return i
		}
	}
	t.Fatalf("no teaching slot starting at %d", start)
	return -1
}

func TestMaterializeLectureAndLab(t *testing.T) {
	lecture := Entry{
		SessionID:   uuid.New(),
		SubjectName: "Discrete Mathematics",
		TeacherAbbr: "DM",
		Kind:        conflict.SessionLecture,
		SlotSpan:    1,
		Weekday:     timeslot.Monday,
		StartMin:    hm(9, 45),
		EndMin:      hm(10, 35),
	}
	lab := Entry{
		SessionID:   uuid.New(),
		SubjectName: "Physics Lab",
		TeacherAbbr: "PL",
		Kind:        conflict.SessionLab,
		SlotSpan:    2,
		Weekday:     timeslot.Monday,
		StartMin:    hm(11, 30),
		EndMin:      hm(13, 0),
	}
	g := Materialize([]Entry{lecture, lab})

	mon := g.Days[timeslot.Monday]

	// the lecture lands in exactly one cell
	li := slotIndexByStart(t, g, hm(9, 45))
	if mon[li] == nil || mon[li].Kind != CellSession || mon[li].Session.SessionID != lecture.SessionID {
		t.Fatalf("lecture cell wrong: %+v", mon[li])
	}
	lectureCells := 0
	for _, c := range mon {
		if c != nil && c.Session != nil && c.Session.SessionID == lecture.SessionID {
			lectureCells++
		}
	}
	if lectureCells != 1 {
		t.Errorf("lecture occupies %d cells, want 1", lectureCells)
	}

	// the lab anchors at 11:30 and continues into the 12:20 cell
	ai := slotIndexByStart(t, g, hm(11, 30))
	ci := slotIndexByStart(t, g, hm(12, 20))
	if mon[ai] == nil || mon[ai].Kind != CellSession || mon[ai].Session.SessionID != lab.SessionID {
		t.Fatalf("lab anchor cell wrong: %+v", mon[ai])
	}
	if mon[ci] == nil || mon[ci].Kind != CellContinuation {
		t.Fatalf("lab continuation cell wrong: %+v", mon[ci])
	}
	if mon[ci].Session != mon[ai].Session {
		t.Error("continuation must reference the same payload as its anchor")
	}

	// pseudo-slots stay static markers, all other cells stay empty
	for i, s := range g.Slots {
		switch s.Kind {
		case timeslot.SlotBreak:
			if mon[i] == nil || mon[i].Kind != CellBreak {
				t.Errorf("slot %d: break marker lost", i)
			}
		case timeslot.SlotLunch:
			if mon[i] == nil || mon[i].Kind != CellLunch {
				t.Errorf("slot %d: lunch marker lost", i)
			}
		default:
			if i != li && i != ai && i != ci && mon[i] != nil {
				t.Errorf("slot %d unexpectedly populated: %+v", i, mon[i])
			}
		}
	}

	// other weekdays untouched
	for _, d := range timeslot.Weekdays()[1:] {
		for i, c := range g.Days[d] {
			if c != nil && c.Kind != CellBreak && c.Kind != CellLunch {
				t.Fatalf("day %d slot %d populated without sessions", d, i)
			}
		}
	}
}

func TestMaterializeLabTruncatedAtEndOfDay(t *testing.T) {
	lab := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLab,
		SlotSpan:  2,
		Weekday:   timeslot.Tuesday,
		StartMin:  hm(16, 30),
		EndMin:    hm(17, 20),
	}
	g := Materialize([]Entry{lab})
	tue := g.Days[timeslot.Tuesday]

	ai := slotIndexByStart(t, g, hm(16, 30))
	if tue[ai] == nil || tue[ai].Kind != CellSession {
		t.Fatalf("anchor cell wrong: %+v", tue[ai])
	}
	for i, c := range tue {
		if c != nil && c.Kind == CellContinuation {
			t.Fatalf("slot %d: truncated lab must write no continuation", i)
		}
	}
}

func TestMaterializeContinuationDoesNotOverwrite(t *testing.T) {
	lab := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLab,
		SlotSpan:  2,
		Weekday:   timeslot.Monday,
		StartMin:  hm(11, 30),
		EndMin:    hm(13, 0),
	}
	occupant := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLecture,
		SlotSpan:  1,
		Weekday:   timeslot.Monday,
		StartMin:  hm(12, 20),
		EndMin:    hm(13, 0),
	}
	// occupant first: the lab's continuation slot is already taken and must
	// not be overwritten (should not occur when the conflict engine was
	// honored, but must not crash either)
	g := Materialize([]Entry{occupant, lab})
	mon := g.Days[timeslot.Monday]
	ci := slotIndexByStart(t, g, hm(12, 20))
	if mon[ci] == nil || mon[ci].Kind != CellSession || mon[ci].Session.SessionID != occupant.SessionID {
		t.Fatalf("occupied cell was overwritten: %+v", mon[ci])
	}
}

func TestMaterializeToleranceAndSkip(t *testing.T) {
	drifted := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLecture,
		SlotSpan:  1,
		Weekday:   timeslot.Monday,
		StartMin:  hm(9, 47), // 2 min drift, within tolerance
		EndMin:    hm(10, 35),
	}
	orphan := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLecture,
		SlotSpan:  1,
		Weekday:   timeslot.Monday,
		StartMin:  hm(13, 15), // inside lunch, no slot within tolerance
		EndMin:    hm(13, 45),
	}
	badDay := Entry{
		SessionID: uuid.New(),
		Kind:      conflict.SessionLecture,
		SlotSpan:  1,
		Weekday:   9,
		StartMin:  hm(9, 45),
		EndMin:    hm(10, 35),
	}
	g := Materialize([]Entry{drifted, orphan, badDay})

	mon := g.Days[timeslot.Monday]
	di := slotIndexByStart(t, g, hm(9, 45))
	if mon[di] == nil || mon[di].Session == nil || mon[di].Session.SessionID != drifted.SessionID {
		t.Fatalf("drifted session not snapped to 09:45 slot: %+v", mon[di])
	}
	if g.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 (orphan + bad weekday)", g.Skipped)
	}
}

/* =========================
   BuildGrid over a store
   ========================= */

type fakeGridStore struct {
	classes  map[uuid.UUID]bool
	sessions map[uuid.UUID][]Entry
}

func (f *fakeGridStore) ClassExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.classes[id], nil
}

func (f *fakeGridStore) SessionsForClass(_ context.Context, id uuid.UUID) ([]Entry, error) {
	return f.sessions[id], nil
}

func TestBuildGridMissingClass(t *testing.T) {
	m := New(&fakeGridStore{classes: map[uuid.UUID]bool{}})
	_, err := m.BuildGrid(context.Background(), uuid.New())
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}

func TestBuildGrid(t *testing.T) {
	classID := uuid.New()
	store := &fakeGridStore{
		classes: map[uuid.UUID]bool{classID: true},
		sessions: map[uuid.UUID][]Entry{
			classID: {{
				SessionID: uuid.New(),
				Kind:      conflict.SessionLecture,
				SlotSpan:  1,
				Weekday:   timeslot.Friday,
				StartMin:  hm(14, 0),
				EndMin:    hm(14, 50),
			}},
		},
	}
	g, err := New(store).BuildGrid(context.Background(), classID)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if g.ClassID != classID {
		t.Errorf("grid class id = %s, want %s", g.ClassID, classID)
	}
	fi := slotIndexByStart(t, g, hm(14, 0))
	if g.Days[timeslot.Friday][fi] == nil {
		t.Error("friday 14:00 cell empty")
	}
}
