// file: internals/features/school/timetable/sessions/dto/session_dto.go
package dto

import (
	"fmt"

	"github.com/google/uuid"

	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/features/school/timetable/sessions/model"
	"timetable_backend/internals/helpers/dbtime"
)

/* ========== CREATE ========== */

type CreateSessionRequest struct {
	ClassSessionClassID   string  `json:"class_session_class_id" validate:"required,uuid"`
	ClassSessionSubjectID *string `json:"class_session_subject_id" validate:"omitempty,uuid"`
	ClassSessionLabID     *string `json:"class_session_lab_id" validate:"omitempty,uuid"`

	ClassSessionTeacherID          *string `json:"class_session_teacher_id" validate:"omitempty,uuid"`
	ClassSessionAssistantTeacherID *string `json:"class_session_assistant_teacher_id" validate:"omitempty,uuid"`

	ClassSessionLocationKind *string `json:"class_session_location_kind" validate:"omitempty,oneof=room lab"`
	ClassSessionLocationID   *string `json:"class_session_location_id" validate:"omitempty,uuid"`

	ClassSessionKind      string `json:"class_session_kind" validate:"required,oneof=LECTURE LAB"`
	ClassSessionDayOfWeek int    `json:"class_session_day_of_week" validate:"required,min=1,max=6"`

	// "HH:MM", "HH:MM:SS" or a full timestamp; the date part of a timestamp
	// is ignored, only the clock matters
	ClassSessionStartTime string `json:"class_session_start_time" validate:"required"`
	ClassSessionEndTime   string `json:"class_session_end_time" validate:"required"`

	ClassSessionSlotSpan *int `json:"class_session_slot_span" validate:"omitempty,min=1,max=2"`
}

func (r CreateSessionRequest) ToModel() (model.ClassSessionModel, error) {
	var m model.ClassSessionModel

	classID, err := uuid.Parse(r.ClassSessionClassID)
	if err != nil {
		return m, fmt.Errorf("class_session_class_id: %w", err)
	}
	m.ClassSessionClassID = classID

	if m.ClassSessionSubjectID, err = parseOptionalUUID(r.ClassSessionSubjectID, "class_session_subject_id"); err != nil {
		return m, err
	}
	if m.ClassSessionLabID, err = parseOptionalUUID(r.ClassSessionLabID, "class_session_lab_id"); err != nil {
		return m, err
	}
	if m.ClassSessionTeacherID, err = parseOptionalUUID(r.ClassSessionTeacherID, "class_session_teacher_id"); err != nil {
		return m, err
	}
	if m.ClassSessionAssistantTeacherID, err = parseOptionalUUID(r.ClassSessionAssistantTeacherID, "class_session_assistant_teacher_id"); err != nil {
		return m, err
	}

	// location kind and id travel together
	if (r.ClassSessionLocationKind == nil) != (r.ClassSessionLocationID == nil) {
		return m, fmt.Errorf("location kind and id must both be set or both be empty")
	}
	m.ClassSessionLocationKind = r.ClassSessionLocationKind
	if m.ClassSessionLocationID, err = parseOptionalUUID(r.ClassSessionLocationID, "class_session_location_id"); err != nil {
		return m, err
	}

	m.ClassSessionKind = r.ClassSessionKind
	m.ClassSessionDayOfWeek = r.ClassSessionDayOfWeek

	// malformed time strings fail fast here, never silently default
	if m.ClassSessionStartTime, err = dbtime.Parse(r.ClassSessionStartTime); err != nil {
		return m, fmt.Errorf("class_session_start_time: %w", err)
	}
	if m.ClassSessionEndTime, err = dbtime.Parse(r.ClassSessionEndTime); err != nil {
		return m, fmt.Errorf("class_session_end_time: %w", err)
	}

	m.ClassSessionSlotSpan = defaultSlotSpan(r.ClassSessionKind, r.ClassSessionSlotSpan)
	return m, nil
}

func parseOptionalUUID(s *string, field string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &id, nil
}

// 1 for lectures, 2 for labs, unless the caller says otherwise
func defaultSlotSpan(kind string, span *int) int {
	if span != nil {
		return *span
	}
	if kind == string(conflict.SessionLab) {
		return 2
	}
	return 1
}

/* ========== UPDATE (pointer-based) ========== */

type UpdateSessionRequest struct {
	ClassSessionSubjectID *string `json:"class_session_subject_id" validate:"omitempty,uuid"`
	ClassSessionLabID     *string `json:"class_session_lab_id" validate:"omitempty,uuid"`

	ClassSessionTeacherID          *string `json:"class_session_teacher_id" validate:"omitempty,uuid"`
	ClassSessionAssistantTeacherID *string `json:"class_session_assistant_teacher_id" validate:"omitempty,uuid"`

	ClassSessionLocationKind *string `json:"class_session_location_kind" validate:"omitempty,oneof=room lab"`
	ClassSessionLocationID   *string `json:"class_session_location_id" validate:"omitempty,uuid"`

	ClassSessionKind      *string `json:"class_session_kind" validate:"omitempty,oneof=LECTURE LAB"`
	ClassSessionDayOfWeek *int    `json:"class_session_day_of_week" validate:"omitempty,min=1,max=6"`

	ClassSessionStartTime *string `json:"class_session_start_time"`
	ClassSessionEndTime   *string `json:"class_session_end_time"`

	ClassSessionSlotSpan *int `json:"class_session_slot_span" validate:"omitempty,min=1,max=2"`
}

func (r UpdateSessionRequest) Apply(m *model.ClassSessionModel) error {
	var err error
	if r.ClassSessionSubjectID != nil {
		if m.ClassSessionSubjectID, err = parseOptionalUUID(r.ClassSessionSubjectID, "class_session_subject_id"); err != nil {
			return err
		}
	}
	if r.ClassSessionLabID != nil {
		if m.ClassSessionLabID, err = parseOptionalUUID(r.ClassSessionLabID, "class_session_lab_id"); err != nil {
			return err
		}
	}
	if r.ClassSessionTeacherID != nil {
		if m.ClassSessionTeacherID, err = parseOptionalUUID(r.ClassSessionTeacherID, "class_session_teacher_id"); err != nil {
			return err
		}
	}
	if r.ClassSessionAssistantTeacherID != nil {
		if m.ClassSessionAssistantTeacherID, err = parseOptionalUUID(r.ClassSessionAssistantTeacherID, "class_session_assistant_teacher_id"); err != nil {
			return err
		}
	}
	if r.ClassSessionLocationKind != nil {
		m.ClassSessionLocationKind = r.ClassSessionLocationKind
	}
	if r.ClassSessionLocationID != nil {
		if m.ClassSessionLocationID, err = parseOptionalUUID(r.ClassSessionLocationID, "class_session_location_id"); err != nil {
			return err
		}
	}
	// same rule as create: the resulting pair is both set or both empty,
	// never a half-populated location
	if (m.ClassSessionLocationKind == nil) != (m.ClassSessionLocationID == nil) {
		return fmt.Errorf("location kind and id must both be set or both be empty")
	}
	if r.ClassSessionKind != nil {
		// a kind change without an explicit span re-derives the default
		// (LAB 2, LECTURE 1) instead of keeping the old kind's span
		if *r.ClassSessionKind != m.ClassSessionKind && r.ClassSessionSlotSpan == nil {
			m.ClassSessionSlotSpan = defaultSlotSpan(*r.ClassSessionKind, nil)
		}
		m.ClassSessionKind = *r.ClassSessionKind
	}
	if r.ClassSessionDayOfWeek != nil {
		m.ClassSessionDayOfWeek = *r.ClassSessionDayOfWeek
	}
	if r.ClassSessionStartTime != nil {
		if m.ClassSessionStartTime, err = dbtime.Parse(*r.ClassSessionStartTime); err != nil {
			return fmt.Errorf("class_session_start_time: %w", err)
		}
	}
	if r.ClassSessionEndTime != nil {
		if m.ClassSessionEndTime, err = dbtime.Parse(*r.ClassSessionEndTime); err != nil {
			return fmt.Errorf("class_session_end_time: %w", err)
		}
	}
	if r.ClassSessionSlotSpan != nil {
		m.ClassSessionSlotSpan = *r.ClassSessionSlotSpan
	}
	return nil
}

/* ========== RESPONSE ========== */

type SessionResponse struct {
	ClassSessionID        string  `json:"class_session_id"`
	ClassSessionClassID   string  `json:"class_session_class_id"`
	ClassSessionSubjectID *string `json:"class_session_subject_id,omitempty"`
	ClassSessionLabID     *string `json:"class_session_lab_id,omitempty"`

	ClassSessionTeacherID          *string `json:"class_session_teacher_id,omitempty"`
	ClassSessionAssistantTeacherID *string `json:"class_session_assistant_teacher_id,omitempty"`

	ClassSessionLocationKind *string `json:"class_session_location_kind,omitempty"`
	ClassSessionLocationID   *string `json:"class_session_location_id,omitempty"`

	ClassSessionKind      string `json:"class_session_kind"`
	ClassSessionDayOfWeek int    `json:"class_session_day_of_week"`
	ClassSessionStartTime string `json:"class_session_start_time"`
	ClassSessionEndTime   string `json:"class_session_end_time"`
	ClassSessionSlotSpan  int    `json:"class_session_slot_span"`
}

func FromModel(m *model.ClassSessionModel) SessionResponse {
	return SessionResponse{
		ClassSessionID:                 m.ClassSessionID.String(),
		ClassSessionClassID:            m.ClassSessionClassID.String(),
		ClassSessionSubjectID:          uuidString(m.ClassSessionSubjectID),
		ClassSessionLabID:              uuidString(m.ClassSessionLabID),
		ClassSessionTeacherID:          uuidString(m.ClassSessionTeacherID),
		ClassSessionAssistantTeacherID: uuidString(m.ClassSessionAssistantTeacherID),
		ClassSessionLocationKind:       m.ClassSessionLocationKind,
		ClassSessionLocationID:         uuidString(m.ClassSessionLocationID),
		ClassSessionKind:               m.ClassSessionKind,
		ClassSessionDayOfWeek:          m.ClassSessionDayOfWeek,
		ClassSessionStartTime:          m.ClassSessionStartTime.Format("15:04"),
		ClassSessionEndTime:            m.ClassSessionEndTime.Format("15:04"),
		ClassSessionSlotSpan:           m.ClassSessionSlotSpan,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
