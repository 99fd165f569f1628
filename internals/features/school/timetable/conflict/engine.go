// file: internals/features/school/timetable/conflict/engine.go
package conflict

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"timetable_backend/internals/features/school/timetable/timeslot"
)

/* =========================
   Store boundary
   ========================= */

// Store is the persistence collaborator the engine reads through. Fetching
// only same-weekday rows is a performance boundary, not a correctness one.
type Store interface {
	// SessionsOnWeekday returns every committed session for the weekday.
	SessionsOnWeekday(ctx context.Context, weekday int) ([]Committed, error)
	// CountSessions counts committed (class, subject) sessions across the
	// whole week, excluding excludeID when non-zero.
	CountSessions(ctx context.Context, classID, subjectID, excludeID uuid.UUID) (int64, error)
	// FindClassHeadcount returns the class's student headcount; found=false
	// when the class record does not exist.
	FindClassHeadcount(ctx context.Context, classID uuid.UUID) (headcount int, found bool, err error)
	// FindLocationCapacity returns the seating capacity of a room or lab;
	// found=false when the referenced record does not exist.
	FindLocationCapacity(ctx context.Context, loc LocationRef) (capacity int, found bool, err error)
	// SubjectWeeklyFrequency returns the subject's weekly occurrence cap.
	SubjectWeeklyFrequency(ctx context.Context, subjectID uuid.UUID) (freq int, found bool, err error)
}

// Engine validates one candidate session at a time against the committed
// set. It is a pure decision function over data the Store fetches on its
// behalf; it never writes.
type Engine struct {
	Store Store
}

func New(store Store) *Engine { return &Engine{Store: store} }

// Validate returns nil when every invariant holds, otherwise the first
// violated invariant in fixed priority order (short-circuit). A non-nil
// error means the store itself failed, not that the candidate is invalid.
func (e *Engine) Validate(ctx context.Context, cand Candidate) (*Conflict, error) {
	// malformed input, not a rejectable candidate: abort the request
	if !timeslot.ValidWeekday(cand.Weekday) {
		return nil, fmt.Errorf("conflict: weekday %d is not a teaching day", cand.Weekday)
	}

	// 1) time range inside working hours
	if c := checkTimeRange(cand); c != nil {
		return c, nil
	}

	// 2) fixed lunch window. The short break is a display-only pseudo-slot;
	// no teaching window overlaps it, so only lunch is guarded numerically.
	if intersectsLunch(cand.StartMin, cand.EndMin) {
		return &Conflict{
			Kind: KindBreakViolation,
			Message: fmt.Sprintf("session %s-%s intersects the lunch window %s-%s",
				timeslot.Clock(cand.StartMin), timeslot.Clock(cand.EndMin),
				timeslot.Clock(timeslot.LunchStart), timeslot.Clock(timeslot.LunchEnd)),
		}, nil
	}

	existing, err := e.Store.SessionsOnWeekday(ctx, cand.Weekday)
	if err != nil {
		return nil, err
	}

	// 3..5) overlap invariants against the committed same-day set
	if c := CheckOverlaps(cand, existing); c != nil {
		return c, nil
	}

	// 6) capacity, only when a location is supplied
	if cand.Location != nil {
		c, err := e.checkCapacity(ctx, cand)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}

	// 7) weekly occurrence cap for the (class, subject) pair
	if cand.SubjectID != nil {
		c, err := e.checkWeeklyFrequency(ctx, cand)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}

	return nil, nil
}

func checkTimeRange(cand Candidate) *Conflict {
	if cand.StartMin >= cand.EndMin {
		return &Conflict{
			Kind: KindInvalidTimeRange,
			Message: fmt.Sprintf("start %s must be before end %s",
				timeslot.Clock(cand.StartMin), timeslot.Clock(cand.EndMin)),
		}
	}
	if cand.StartMin < timeslot.Opening() || cand.EndMin > timeslot.Closing() {
		return &Conflict{
			Kind: KindInvalidTimeRange,
			Message: fmt.Sprintf("session %s-%s is outside working hours %s-%s",
				timeslot.Clock(cand.StartMin), timeslot.Clock(cand.EndMin),
				timeslot.Clock(timeslot.Opening()), timeslot.Clock(timeslot.Closing())),
		}
	}
	return nil
}

// CheckOverlaps runs the three overlap invariants (class, teacher,
// location) in priority order against the committed same-day set. Exported
// separately so callers holding the rows already can validate without a
// Store round trip.
func CheckOverlaps(cand Candidate, existing []Committed) *Conflict {
	for _, s := range existing {
		if s.ID == cand.SessionID {
			continue // updating: don't conflict with the prior self
		}
		if !overlaps(cand.StartMin, cand.EndMin, s.StartMin, s.EndMin) {
			continue
		}
		if s.ClassID == cand.ClassID {
			return &Conflict{
				Kind: KindStudentOverlap,
				Message: fmt.Sprintf("class already has a session %s-%s",
					timeslot.Clock(s.StartMin), timeslot.Clock(s.EndMin)),
				ClashingSessionID: clashRef(s.ID),
			}
		}
	}
	for _, s := range existing {
		if s.ID == cand.SessionID {
			continue
		}
		if !overlaps(cand.StartMin, cand.EndMin, s.StartMin, s.EndMin) {
			continue
		}
		if teacherClash(cand, s) {
			return &Conflict{
				Kind: KindTeacherConflict,
				Message: fmt.Sprintf("teacher already has a session %s-%s",
					timeslot.Clock(s.StartMin), timeslot.Clock(s.EndMin)),
				ClashingSessionID: clashRef(s.ID),
			}
		}
	}
	if cand.Location != nil {
		for _, s := range existing {
			if s.ID == cand.SessionID {
				continue
			}
			if !overlaps(cand.StartMin, cand.EndMin, s.StartMin, s.EndMin) {
				continue
			}
			if s.Location != nil && s.Location.Same(*cand.Location) {
				return &Conflict{
					Kind: KindRoomConflict,
					Message: fmt.Sprintf("%s is already occupied %s-%s",
						s.Location.Kind, timeslot.Clock(s.StartMin), timeslot.Clock(s.EndMin)),
					ClashingSessionID: clashRef(s.ID),
				}
			}
		}
	}
	return nil
}

// clashRef copies the loop value so the conflict owns its id.
func clashRef(id uuid.UUID) *uuid.UUID { return &id }

// teacherClash matches the candidate's primary or assistant teacher against
// the committed session's primary or assistant teacher.
func teacherClash(cand Candidate, s Committed) bool {
	for _, t := range []*uuid.UUID{cand.TeacherID, cand.AssistantID} {
		if t == nil {
			continue
		}
		if s.TeacherID != nil && *s.TeacherID == *t {
			return true
		}
		if s.AssistantID != nil && *s.AssistantID == *t {
			return true
		}
	}
	return false
}

func (e *Engine) checkCapacity(ctx context.Context, cand Candidate) (*Conflict, error) {
	headcount, found, err := e.Store.FindClassHeadcount(ctx, cand.ClassID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Conflict{
			Kind:    KindInvalidData,
			Message: "referenced class not found",
		}, nil
	}
	capacity, found, err := e.Store.FindLocationCapacity(ctx, *cand.Location)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Conflict{
			Kind:    KindInvalidData,
			Message: fmt.Sprintf("referenced %s not found", cand.Location.Kind),
		}, nil
	}
	if capacity < headcount {
		return &Conflict{
			Kind: KindCapacityExceeded,
			Message: fmt.Sprintf("%s capacity %d is below class headcount %d",
				cand.Location.Kind, capacity, headcount),
		}, nil
	}
	return nil, nil
}

func (e *Engine) checkWeeklyFrequency(ctx context.Context, cand Candidate) (*Conflict, error) {
	freq, found, err := e.Store.SubjectWeeklyFrequency(ctx, *cand.SubjectID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Conflict{
			Kind:    KindInvalidData,
			Message: "referenced subject not found",
		}, nil
	}
	count, err := e.Store.CountSessions(ctx, cand.ClassID, *cand.SubjectID, cand.SessionID)
	if err != nil {
		return nil, err
	}
	if count >= int64(freq) {
		return &Conflict{
			Kind: KindWeeklyFrequencyExceeded,
			Message: fmt.Sprintf("subject already scheduled %d of %d times this week",
				count, freq),
		}, nil
	}
	return nil, nil
}
