// file: internals/features/school/timetable/conflict/conflict.go
package conflict

import (
	"github.com/google/uuid"

	"timetable_backend/internals/features/school/timetable/timeslot"
)

/* =========================
   Conflict taxonomy
   ========================= */

type Kind string

const (
	KindInvalidTimeRange        Kind = "INVALID_TIME_RANGE"
	KindBreakViolation          Kind = "BREAK_VIOLATION"
	KindStudentOverlap          Kind = "STUDENT_OVERLAP"
	KindTeacherConflict         Kind = "TEACHER_CONFLICT"
	KindRoomConflict            Kind = "ROOM_CONFLICT"
	KindCapacityExceeded        Kind = "CAPACITY_EXCEEDED"
	KindWeeklyFrequencyExceeded Kind = "WEEKLY_FREQUENCY_EXCEEDED"
	KindInvalidData             Kind = "INVALID_DATA"
)

// Conflict is the normal rejection value of Validate. ClashingSessionID is
// set only for the overlap kinds; range/capacity/frequency violations have
// no single clashing row, so the field stays nil and off the wire.
type Conflict struct {
	Kind              Kind       `json:"kind"`
	Message           string     `json:"message"`
	ClashingSessionID *uuid.UUID `json:"clashing_session_id,omitempty"`
}

/* =========================
   Polymorphic location
   ========================= */

type LocationKind string

const (
	LocationRoom LocationKind = "room"
	LocationLab  LocationKind = "lab"
)

// LocationRef is the tagged room-or-lab reference. Engine code switches on
// Kind, never on type reflection.
type LocationRef struct {
	Kind LocationKind `json:"kind"`
	ID   uuid.UUID    `json:"id"`
}

func (l LocationRef) Same(o LocationRef) bool {
	return l.Kind == o.Kind && l.ID == o.ID
}

/* =========================
   Session projections
   ========================= */

type SessionKind string

const (
	SessionLecture SessionKind = "LECTURE"
	SessionLab     SessionKind = "LAB"
)

// Candidate is a proposed session with start/end already normalized to
// minutes since midnight. SessionID is uuid.Nil on create and the prior id
// on update, so a session never conflicts with itself.
type Candidate struct {
	SessionID   uuid.UUID
	ClassID     uuid.UUID
	SubjectID   *uuid.UUID
	TeacherID   *uuid.UUID
	AssistantID *uuid.UUID
	Location    *LocationRef
	Kind        SessionKind
	Weekday     int
	StartMin    int
	EndMin      int
}

// Committed is the projection of an already persisted session the engine
// compares against.
type Committed struct {
	ID          uuid.UUID
	ClassID     uuid.UUID
	TeacherID   *uuid.UUID
	AssistantID *uuid.UUID
	Location    *LocationRef
	StartMin    int
	EndMin      int
}

// overlaps is the half-open interval test: [a1,a2) and [b1,b2) overlap iff
// a1 < b2 && b1 < a2. An interval ending exactly when another starts does
// not conflict; adjacency at slot boundaries depends on this exactly.
func overlaps(a1, a2, b1, b2 int) bool {
	return a1 < b2 && b1 < a2
}

func intersectsLunch(start, end int) bool {
	return overlaps(start, end, timeslot.LunchStart, timeslot.LunchEnd)
}
