// file: internals/features/school/timetable/sessions/dto/session_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func validCreate() CreateSessionRequest {
	kind := "room"
	loc := uuid.NewString()
	return CreateSessionRequest{
		ClassSessionClassID:      uuid.NewString(),
		ClassSessionLocationKind: &kind,
		ClassSessionLocationID:   &loc,
		ClassSessionKind:         "LECTURE",
		ClassSessionDayOfWeek:    1,
		ClassSessionStartTime:    "09:45",
		ClassSessionEndTime:      "10:35",
	}
}

func TestToModelNormalizesTimes(t *testing.T) {
	req := validCreate()
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ClassSessionStartTime.Minutes() != 9*60+45 {
		t.Errorf("start minutes = %d", m.ClassSessionStartTime.Minutes())
	}
	if m.ClassSessionEndTime.Minutes() != 10*60+35 {
		t.Errorf("end minutes = %d", m.ClassSessionEndTime.Minutes())
	}
	if m.ClassSessionSlotSpan != 1 {
		t.Errorf("lecture slot span = %d, want 1", m.ClassSessionSlotSpan)
	}
}

func TestToModelTimestampInputKeepsClockOnly(t *testing.T) {
	req := validCreate()
	req.ClassSessionStartTime = "2024-09-02T11:30:00Z"
	req.ClassSessionEndTime = "2024-09-02T13:00:00+07:00"
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ClassSessionStartTime.Minutes() != 11*60+30 {
		t.Errorf("start minutes = %d", m.ClassSessionStartTime.Minutes())
	}
	if m.ClassSessionEndTime.Minutes() != 13*60 {
		t.Errorf("end minutes = %d", m.ClassSessionEndTime.Minutes())
	}
}

func TestToModelRejectsMalformedTime(t *testing.T) {
	for _, bad := range []string{"", "9:45", "25:00", "noon"} {
		req := validCreate()
		req.ClassSessionStartTime = bad
		if _, err := req.ToModel(); err == nil {
			t.Errorf("start time %q: expected error", bad)
		}
	}
}

func TestToModelLocationKindAndIDTravelTogether(t *testing.T) {
	req := validCreate()
	req.ClassSessionLocationID = nil
	if _, err := req.ToModel(); err == nil {
		t.Error("kind without id: expected error")
	}

	req = validCreate()
	req.ClassSessionLocationKind = nil
	if _, err := req.ToModel(); err == nil {
		t.Error("id without kind: expected error")
	}

	req = validCreate()
	req.ClassSessionLocationKind = nil
	req.ClassSessionLocationID = nil
	if _, err := req.ToModel(); err != nil {
		t.Errorf("no location: %v", err)
	}
}

func TestToModelLabDefaultsToSpanTwo(t *testing.T) {
	req := validCreate()
	req.ClassSessionKind = "LAB"
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ClassSessionSlotSpan != 2 {
		t.Errorf("lab slot span = %d, want 2", m.ClassSessionSlotSpan)
	}

	one := 1
	req.ClassSessionSlotSpan = &one
	m, err = req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ClassSessionSlotSpan != 1 {
		t.Errorf("explicit span = %d, want 1", m.ClassSessionSlotSpan)
	}
}

func TestApplyKeepsLocationPairComplete(t *testing.T) {
	base, err := validCreate().ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	// swapping the id of an already complete pair is fine
	newID := uuid.NewString()
	m := base
	if err := (UpdateSessionRequest{ClassSessionLocationID: &newID}).Apply(&m); err != nil {
		t.Errorf("id swap on complete pair: %v", err)
	}

	// a kind with no id anywhere must be rejected, same as create
	noLoc := validCreate()
	noLoc.ClassSessionLocationKind = nil
	noLoc.ClassSessionLocationID = nil
	bare, err := noLoc.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	kind := "lab"
	if err := (UpdateSessionRequest{ClassSessionLocationKind: &kind}).Apply(&bare); err == nil {
		t.Error("kind without id: expected error")
	}

	// an id alone completes the pair when the kind is already present
	partial := base
	partial.ClassSessionLocationID = nil
	id := uuid.NewString()
	if err := (UpdateSessionRequest{ClassSessionLocationID: &id}).Apply(&partial); err != nil {
		t.Errorf("id completing an existing kind: %v", err)
	}
}

func TestApplyKindChangeRederivesSlotSpan(t *testing.T) {
	m, err := validCreate().ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ClassSessionSlotSpan != 1 {
		t.Fatalf("lecture slot span = %d, want 1", m.ClassSessionSlotSpan)
	}

	lab := "LAB"
	if err := (UpdateSessionRequest{ClassSessionKind: &lab}).Apply(&m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.ClassSessionSlotSpan != 2 {
		t.Errorf("kind change to LAB kept span %d, want 2", m.ClassSessionSlotSpan)
	}

	// an explicit span wins over the derived default
	lecture := "LECTURE"
	two := 2
	if err := (UpdateSessionRequest{ClassSessionKind: &lecture, ClassSessionSlotSpan: &two}).Apply(&m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.ClassSessionSlotSpan != 2 {
		t.Errorf("explicit span overridden, got %d", m.ClassSessionSlotSpan)
	}

	// restating the same kind leaves a custom span alone
	if err := (UpdateSessionRequest{ClassSessionKind: &lecture}).Apply(&m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.ClassSessionSlotSpan != 2 {
		t.Errorf("same-kind patch changed span to %d", m.ClassSessionSlotSpan)
	}
}
