// file: internals/features/school/timetable/conflict/engine_test.go
package conflict

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

/* =========================
   Fake store
   ========================= */

type fakeStore struct {
	sessions   map[int][]Committed        // weekday → rows
	headcounts map[uuid.UUID]int          // class → headcount
	capacities map[LocationRef]int        // location → capacity
	frequency  map[uuid.UUID]int          // subject → weekly cap
	counts     map[[2]uuid.UUID]int64     // (class,subject) → committed count
}

func (f *fakeStore) SessionsOnWeekday(_ context.Context, weekday int) ([]Committed, error) {
	return f.sessions[weekday], nil
}

func (f *fakeStore) CountSessions(_ context.Context, classID, subjectID, excludeID uuid.UUID) (int64, error) {
	n := f.counts[[2]uuid.UUID{classID, subjectID}]
	if excludeID != uuid.Nil && n > 0 {
		n-- // the fake assumes excludeID names one of the committed rows
	}
	return n, nil
}

func (f *fakeStore) FindClassHeadcount(_ context.Context, classID uuid.UUID) (int, bool, error) {
	n, ok := f.headcounts[classID]
	return n, ok, nil
}

func (f *fakeStore) FindLocationCapacity(_ context.Context, loc LocationRef) (int, bool, error) {
	n, ok := f.capacities[loc]
	return n, ok, nil
}

func (f *fakeStore) SubjectWeeklyFrequency(_ context.Context, subjectID uuid.UUID) (int, bool, error) {
	n, ok := f.frequency[subjectID]
	return n, ok, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:   map[int][]Committed{},
		headcounts: map[uuid.UUID]int{},
		capacities: map[LocationRef]int{},
		frequency:  map[uuid.UUID]int{},
		counts:     map[[2]uuid.UUID]int64{},
	}
}

func hm(h, m int) int { return h*60 + m }

var (
	classA    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	classB    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	teacherX  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	teacherY  = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	subjectM  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	room101   = LocationRef{Kind: LocationRoom, ID: uuid.MustParse("66666666-6666-6666-6666-666666666666")}
	labPhys   = LocationRef{Kind: LocationLab, ID: uuid.MustParse("77777777-7777-7777-7777-777777777777")}
	sessionID = uuid.MustParse("88888888-8888-8888-8888-888888888888")
)

func validate(t *testing.T, store *fakeStore, cand Candidate) *Conflict {
	t.Helper()
	c, err := New(store).Validate(context.Background(), cand)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	return c
}

/* =========================
   Range & lunch guards
   ========================= */

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       Kind
	}{
		{"start equals end", hm(10, 0), hm(10, 0), KindInvalidTimeRange},
		{"start after end", hm(11, 0), hm(10, 0), KindInvalidTimeRange},
		{"before opening", hm(8, 0), hm(9, 0), KindInvalidTimeRange},
		{"after closing", hm(16, 40), hm(17, 30), KindInvalidTimeRange},
		{"intersects lunch", hm(12, 30), hm(13, 30), KindBreakViolation},
		{"inside lunch", hm(13, 10), hm(13, 50), KindBreakViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validate(t, newFakeStore(), Candidate{
				ClassID: classA, Weekday: 1, StartMin: tt.start, EndMin: tt.end,
			})
			if c == nil || c.Kind != tt.want {
				t.Fatalf("got %+v, want kind %s", c, tt.want)
			}
			if c.ClashingSessionID != nil {
				t.Error("range violations carry no clashing session id")
			}
		})
	}
}

func TestValidateCleanSlotAccepted(t *testing.T) {
	// interval strictly inside a teaching window, everything free that day
	c := validate(t, newFakeStore(), Candidate{
		ClassID: classA, Weekday: 1,
		StartMin: hm(9, 45), EndMin: hm(10, 35),
	})
	if c != nil {
		t.Fatalf("free slot rejected: %+v", c)
	}
}

func TestValidateInvalidWeekday(t *testing.T) {
	_, err := New(newFakeStore()).Validate(context.Background(), Candidate{
		ClassID: classA, Weekday: 7, StartMin: hm(10, 0), EndMin: hm(11, 0),
	})
	if err == nil {
		t.Fatal("weekday 7 must abort, not validate")
	}
}

/* =========================
   Overlap invariants
   ========================= */

func TestValidateStudentOverlap(t *testing.T) {
	store := newFakeStore()
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classA, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	c := validate(t, store, Candidate{
		ClassID: classA, Weekday: 1, StartMin: hm(10, 0), EndMin: hm(10, 50),
	})
	if c == nil || c.Kind != KindStudentOverlap {
		t.Fatalf("got %+v, want STUDENT_OVERLAP", c)
	}
	if c.ClashingSessionID == nil || *c.ClashingSessionID != sessionID {
		t.Errorf("clashing id = %v, want %s", c.ClashingSessionID, sessionID)
	}
}

func TestValidateAdjacentIntervalsDoNotConflict(t *testing.T) {
	// [09:45,10:35) then [10:35,11:25): touching, not overlapping
	store := newFakeStore()
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classA, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	c := validate(t, store, Candidate{
		ClassID: classA, Weekday: 1, StartMin: hm(10, 35), EndMin: hm(11, 25),
	})
	if c != nil {
		t.Fatalf("adjacent interval rejected: %+v", c)
	}
}

func TestValidateTeacherConflict(t *testing.T) {
	tests := []struct {
		name      string
		committed Committed
		cand      Candidate
	}{
		{
			"primary vs primary",
			Committed{ID: sessionID, ClassID: classB, TeacherID: &teacherX, StartMin: hm(9, 45), EndMin: hm(10, 35)},
			Candidate{ClassID: classA, TeacherID: &teacherX, Weekday: 1, StartMin: hm(10, 0), EndMin: hm(10, 50)},
		},
		{
			"assistant vs primary",
			Committed{ID: sessionID, ClassID: classB, TeacherID: &teacherX, StartMin: hm(9, 45), EndMin: hm(10, 35)},
			Candidate{ClassID: classA, TeacherID: &teacherY, AssistantID: &teacherX, Weekday: 1, StartMin: hm(10, 0), EndMin: hm(10, 50)},
		},
		{
			"primary vs assistant",
			Committed{ID: sessionID, ClassID: classB, TeacherID: &teacherY, AssistantID: &teacherX, StartMin: hm(9, 45), EndMin: hm(10, 35)},
			Candidate{ClassID: classA, TeacherID: &teacherX, Weekday: 1, StartMin: hm(10, 0), EndMin: hm(10, 50)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.sessions[1] = []Committed{tt.committed}
			c := validate(t, store, tt.cand)
			if c == nil || c.Kind != KindTeacherConflict {
				t.Fatalf("got %+v, want TEACHER_CONFLICT", c)
			}
			if c.ClashingSessionID == nil || *c.ClashingSessionID != sessionID {
				t.Errorf("clashing id = %v, want %s", c.ClashingSessionID, sessionID)
			}
		})
	}
}

func TestValidateRoomConflict(t *testing.T) {
	store := newFakeStore()
	loc := room101
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classB, Location: &loc, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	c := validate(t, store, Candidate{
		ClassID: classA, Location: &loc, Weekday: 1,
		StartMin: hm(10, 0), EndMin: hm(10, 50),
	})
	if c == nil || c.Kind != KindRoomConflict {
		t.Fatalf("got %+v, want ROOM_CONFLICT", c)
	}
}

func TestValidateLocationKindDisambiguates(t *testing.T) {
	// a lab and a room sharing the same uuid are different locations
	store := newFakeStore()
	roomLoc := LocationRef{Kind: LocationRoom, ID: labPhys.ID}
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classB, Location: &roomLoc, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	labLoc := labPhys
	store.capacities[labLoc] = 100
	store.headcounts[classA] = 30
	c := validate(t, store, Candidate{
		ClassID: classA, Location: &labLoc, Weekday: 1,
		StartMin: hm(10, 0), EndMin: hm(10, 50),
	})
	if c != nil {
		t.Fatalf("different location kinds must not clash: %+v", c)
	}
}

func TestValidateUpdateExcludesSelf(t *testing.T) {
	store := newFakeStore()
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classA, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	c := validate(t, store, Candidate{
		SessionID: sessionID, ClassID: classA, Weekday: 1,
		StartMin: hm(9, 45), EndMin: hm(10, 35),
	})
	if c != nil {
		t.Fatalf("session conflicts with itself on update: %+v", c)
	}
}

/* =========================
   Capacity & frequency
   ========================= */

func TestValidateCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     Kind // "" = accepted
	}{
		{"exact fit allowed", 60, ""},
		{"one short rejected", 59, KindCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.headcounts[classA] = 60
			store.capacities[room101] = tt.capacity
			loc := room101
			c := validate(t, store, Candidate{
				ClassID: classA, Location: &loc, Weekday: 1,
				StartMin: hm(9, 45), EndMin: hm(10, 35),
			})
			if tt.want == "" {
				if c != nil {
					t.Fatalf("exact-capacity fit rejected: %+v", c)
				}
				return
			}
			if c == nil || c.Kind != tt.want {
				t.Fatalf("got %+v, want %s", c, tt.want)
			}
			if c.ClashingSessionID != nil {
				t.Error("capacity violations carry no clashing session id")
			}
		})
	}
}

func TestValidateMissingClassIsInvalidData(t *testing.T) {
	store := newFakeStore()
	store.capacities[room101] = 100
	loc := room101
	c := validate(t, store, Candidate{
		ClassID: classA, Location: &loc, Weekday: 1,
		StartMin: hm(9, 45), EndMin: hm(10, 35),
	})
	if c == nil || c.Kind != KindInvalidData {
		t.Fatalf("got %+v, want INVALID_DATA", c)
	}
}

func TestValidateWeeklyFrequency(t *testing.T) {
	store := newFakeStore()
	store.frequency[subjectM] = 2
	store.counts[[2]uuid.UUID{classA, subjectM}] = 2

	// third session for the (class, subject) pair is rejected
	c := validate(t, store, Candidate{
		ClassID: classA, SubjectID: &subjectM, Weekday: 1,
		StartMin: hm(9, 45), EndMin: hm(10, 35),
	})
	if c == nil || c.Kind != KindWeeklyFrequencyExceeded {
		t.Fatalf("got %+v, want WEEKLY_FREQUENCY_EXCEEDED", c)
	}

	// updating one of the committed two (own id excluded) is fine
	c = validate(t, store, Candidate{
		SessionID: sessionID, ClassID: classA, SubjectID: &subjectM, Weekday: 1,
		StartMin: hm(9, 45), EndMin: hm(10, 35),
	})
	if c != nil {
		t.Fatalf("update with excluded id rejected: %+v", c)
	}
}

/* =========================
   Priority order
   ========================= */

func TestValidatePriorityOrder(t *testing.T) {
	// candidate violating student overlap, room conflict, capacity and
	// frequency at once must report STUDENT_OVERLAP, the highest priority.
	store := newFakeStore()
	loc := room101
	store.sessions[1] = []Committed{
		{ID: sessionID, ClassID: classA, Location: &loc, StartMin: hm(9, 45), EndMin: hm(10, 35)},
	}
	store.headcounts[classA] = 60
	store.capacities[room101] = 10
	store.frequency[subjectM] = 1
	store.counts[[2]uuid.UUID{classA, subjectM}] = 1

	c := validate(t, store, Candidate{
		ClassID: classA, SubjectID: &subjectM, Location: &loc, Weekday: 1,
		StartMin: hm(10, 0), EndMin: hm(10, 50),
	})
	if c == nil || c.Kind != KindStudentOverlap {
		t.Fatalf("got %+v, want STUDENT_OVERLAP first", c)
	}
}

func TestOverlapPredicate(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 int
		want           bool
	}{
		{"disjoint", 100, 200, 300, 400, false},
		{"touching", 100, 200, 200, 300, false},
		{"touching reversed", 200, 300, 100, 200, false},
		{"partial", 100, 200, 150, 250, true},
		{"contained", 100, 400, 200, 300, true},
		{"identical", 100, 200, 100, 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("overlaps(%d,%d,%d,%d) = %v, want %v", tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
			}
		})
	}
}

func TestConflictJSONOmitsAbsentClashingID(t *testing.T) {
	b, err := json.Marshal(Conflict{Kind: KindBreakViolation, Message: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "clashing_session_id") {
		t.Errorf("clashing_session_id present on a kind without one: %s", b)
	}

	id := uuid.New()
	b, err = json.Marshal(Conflict{Kind: KindStudentOverlap, Message: "y", ClashingSessionID: &id})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), id.String()) {
		t.Errorf("clashing_session_id missing for an overlap kind: %s", b)
	}
}
