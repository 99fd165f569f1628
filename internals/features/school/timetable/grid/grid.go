// file: internals/features/school/timetable/grid/grid.go
package grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/features/school/timetable/timeslot"
)

// ErrClassNotFound is the only hard failure of BuildGrid; every data-hygiene
// gap degrades by omission instead.
var ErrClassNotFound = errors.New("grid: class not found")

/* =========================
   Cells
   ========================= */

type CellKind string

const (
	CellSession      CellKind = "session"
	CellContinuation CellKind = "continuation"
	CellBreak        CellKind = "break"
	CellLunch        CellKind = "lunch"
)

// Entry is the projection of one committed session the materializer places
// on the grid.
type Entry struct {
	SessionID    uuid.UUID            `json:"session_id"`
	SubjectName  string               `json:"subject_name"`
	TeacherAbbr  string               `json:"teacher_abbr"`
	LocationCode string               `json:"location_code"`
	Kind         conflict.SessionKind `json:"kind"`
	SlotSpan     int                  `json:"slot_span"`
	Weekday      int                  `json:"weekday"`
	StartMin     int                  `json:"start_min"`
	EndMin       int                  `json:"end_min"`
}

// Cell is one (weekday, slot) position. A continuation cell shares the same
// *Entry as its anchor; consumers must treat it as already rendered and
// merge it with the anchor, never re-render it.
type Cell struct {
	Kind    CellKind `json:"kind"`
	Session *Entry   `json:"session,omitempty"`
}

// Grid is the canonical per-class weekly display structure: weekday →
// slot index (over timeslot.Slots(), pseudo-slots included) → cell-or-nil.
type Grid struct {
	ClassID uuid.UUID       `json:"class_id"`
	Slots   []timeslot.Slot `json:"slots"`
	Days    map[int][]*Cell `json:"days"`
	Skipped int             `json:"skipped"` // sessions with no resolvable slot
}

/* =========================
   Materializer
   ========================= */

// Store is the persistence collaborator the materializer reads through.
type Store interface {
	ClassExists(ctx context.Context, classID uuid.UUID) (bool, error)
	SessionsForClass(ctx context.Context, classID uuid.UUID) ([]Entry, error)
}

// Materializer re-projects committed sessions onto the slot calendar. It
// never re-validates constraints; it assumes the stored data already passed
// the conflict engine.
type Materializer struct {
	Store Store
}

func New(store Store) *Materializer { return &Materializer{Store: store} }

// BuildGrid fetches the class's sessions and materializes the weekly grid.
func (m *Materializer) BuildGrid(ctx context.Context, classID uuid.UUID) (*Grid, error) {
	found, err := m.Store.ClassExists(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, classID)
	}
	sessions, err := m.Store.SessionsForClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	g := Materialize(sessions)
	g.ClassID = classID
	return g, nil
}

// Materialize is the pure projection over an already fetched session set,
// in input order.
func Materialize(sessions []Entry) *Grid {
	slots := timeslot.Slots()
	g := &Grid{
		Slots: slots,
		Days:  make(map[int][]*Cell, len(timeslot.Weekdays())),
	}
	for _, d := range timeslot.Weekdays() {
		col := make([]*Cell, len(slots))
		for i, s := range slots {
			switch s.Kind {
			case timeslot.SlotBreak:
				col[i] = &Cell{Kind: CellBreak}
			case timeslot.SlotLunch:
				col[i] = &Cell{Kind: CellLunch}
			}
		}
		g.Days[d] = col
	}

	for i := range sessions {
		entry := sessions[i]
		col, ok := g.Days[entry.Weekday]
		if !ok {
			g.Skipped++ // weekday outside the calendar: data hygiene, skip
			continue
		}
		idx, ok := timeslot.Resolve(entry.StartMin, timeslot.DefaultToleranceMin)
		if !ok {
			g.Skipped++ // no slot within tolerance: skip, never abort
			continue
		}
		col[idx] = &Cell{Kind: CellSession, Session: &entry}

		// A 2-span lab also claims the following teaching slot. At the last
		// teaching slot of the day there is no next slot and the span is
		// effectively truncated to 1; a documented limitation, not an error.
		if entry.Kind == conflict.SessionLab && entry.SlotSpan == 2 {
			if next, ok := timeslot.NextTeaching(idx); ok && col[next] == nil {
				col[next] = &Cell{Kind: CellContinuation, Session: &entry}
			}
		}
	}
	return g
}
