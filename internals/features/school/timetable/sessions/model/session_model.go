// file: internals/features/school/timetable/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/helpers/dbtime"
)

type ClassSessionModel struct {
	ClassSessionID uuid.UUID `json:"class_session_id" gorm:"type:uuid;primaryKey;column:class_session_id;default:gen_random_uuid()"`

	ClassSessionClassID   uuid.UUID  `json:"class_session_class_id" gorm:"type:uuid;not null;column:class_session_class_id"`
	ClassSessionSubjectID *uuid.UUID `json:"class_session_subject_id,omitempty" gorm:"type:uuid;column:class_session_subject_id"`
	ClassSessionLabID     *uuid.UUID `json:"class_session_lab_id,omitempty" gorm:"type:uuid;column:class_session_lab_id"`

	ClassSessionTeacherID          *uuid.UUID `json:"class_session_teacher_id,omitempty" gorm:"type:uuid;column:class_session_teacher_id"`
	ClassSessionAssistantTeacherID *uuid.UUID `json:"class_session_assistant_teacher_id,omitempty" gorm:"type:uuid;column:class_session_assistant_teacher_id"`

	// polymorphic location: kind discriminates the id ("room" | "lab")
	ClassSessionLocationKind *string    `json:"class_session_location_kind,omitempty" gorm:"type:varchar(10);column:class_session_location_kind"`
	ClassSessionLocationID   *uuid.UUID `json:"class_session_location_id,omitempty" gorm:"type:uuid;column:class_session_location_id"`

	// LECTURE | LAB
	ClassSessionKind string `json:"class_session_kind" gorm:"type:varchar(10);not null;default:'LECTURE';column:class_session_kind"`

	// 1..6, Monday..Saturday
	ClassSessionDayOfWeek int `json:"class_session_day_of_week" gorm:"not null;column:class_session_day_of_week"`

	ClassSessionStartTime dbtime.Tod `json:"class_session_start_time" gorm:"type:time;not null;column:class_session_start_time"`
	ClassSessionEndTime   dbtime.Tod `json:"class_session_end_time" gorm:"type:time;not null;column:class_session_end_time"`

	// 1 for lectures, 2 for labs
	ClassSessionSlotSpan int `json:"class_session_slot_span" gorm:"not null;default:1;column:class_session_slot_span"`

	ClassSessionCreatedAt time.Time      `json:"class_session_created_at" gorm:"column:class_session_created_at;autoCreateTime"`
	ClassSessionUpdatedAt time.Time      `json:"class_session_updated_at" gorm:"column:class_session_updated_at;autoUpdateTime"`
	ClassSessionDeletedAt gorm.DeletedAt `json:"class_session_deleted_at,omitempty" gorm:"column:class_session_deleted_at;index"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

// Location builds the tagged room-or-lab reference, nil when unset.
func (m *ClassSessionModel) Location() *conflict.LocationRef {
	if m.ClassSessionLocationKind == nil || m.ClassSessionLocationID == nil {
		return nil
	}
	return &conflict.LocationRef{
		Kind: conflict.LocationKind(*m.ClassSessionLocationKind),
		ID:   *m.ClassSessionLocationID,
	}
}

// Candidate projects the row into the conflict engine's input shape.
func (m *ClassSessionModel) Candidate() conflict.Candidate {
	return conflict.Candidate{
		SessionID:   m.ClassSessionID,
		ClassID:     m.ClassSessionClassID,
		SubjectID:   m.ClassSessionSubjectID,
		TeacherID:   m.ClassSessionTeacherID,
		AssistantID: m.ClassSessionAssistantTeacherID,
		Location:    m.Location(),
		Kind:        conflict.SessionKind(m.ClassSessionKind),
		Weekday:     m.ClassSessionDayOfWeek,
		StartMin:    m.ClassSessionStartTime.Minutes(),
		EndMin:      m.ClassSessionEndTime.Minutes(),
	}
}

// Committed projects the row for comparison against a candidate.
func (m *ClassSessionModel) Committed() conflict.Committed {
	return conflict.Committed{
		ID:          m.ClassSessionID,
		ClassID:     m.ClassSessionClassID,
		TeacherID:   m.ClassSessionTeacherID,
		AssistantID: m.ClassSessionAssistantTeacherID,
		Location:    m.Location(),
		StartMin:    m.ClassSessionStartTime.Minutes(),
		EndMin:      m.ClassSessionEndTime.Minutes(),
	}
}
