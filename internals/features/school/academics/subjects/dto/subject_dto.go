// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"timetable_backend/internals/features/school/academics/subjects/model"
)

/* ========== CREATE ========== */

type CreateSubjectRequest struct {
	SubjectName            string `json:"subject_name" validate:"required,max=120"`
	SubjectCode            string `json:"subject_code" validate:"required,max=40"`
	SubjectWeeklyFrequency int    `json:"subject_weekly_frequency" validate:"required,min=1,max=20"`
	SubjectDurationMin     int    `json:"subject_duration_min" validate:"omitempty,min=10,max=240"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	m := model.SubjectModel{
		SubjectName:            r.SubjectName,
		SubjectCode:            r.SubjectCode,
		SubjectWeeklyFrequency: r.SubjectWeeklyFrequency,
		SubjectDurationMin:     r.SubjectDurationMin,
	}
	if m.SubjectDurationMin == 0 {
		m.SubjectDurationMin = 50
	}
	return m
}

/* ========== UPDATE ========== */

type UpdateSubjectRequest struct {
	SubjectName            *string `json:"subject_name" validate:"omitempty,max=120"`
	SubjectCode            *string `json:"subject_code" validate:"omitempty,max=40"`
	SubjectWeeklyFrequency *int    `json:"subject_weekly_frequency" validate:"omitempty,min=1,max=20"`
	SubjectDurationMin     *int    `json:"subject_duration_min" validate:"omitempty,min=10,max=240"`
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = *r.SubjectName
	}
	if r.SubjectCode != nil {
		m.SubjectCode = *r.SubjectCode
	}
	if r.SubjectWeeklyFrequency != nil {
		m.SubjectWeeklyFrequency = *r.SubjectWeeklyFrequency
	}
	if r.SubjectDurationMin != nil {
		m.SubjectDurationMin = *r.SubjectDurationMin
	}
}

/* ========== RESPONSE ========== */

type SubjectResponse struct {
	SubjectID              string `json:"subject_id"`
	SubjectName            string `json:"subject_name"`
	SubjectCode            string `json:"subject_code"`
	SubjectWeeklyFrequency int    `json:"subject_weekly_frequency"`
	SubjectDurationMin     int    `json:"subject_duration_min"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:              m.SubjectID.String(),
		SubjectName:            m.SubjectName,
		SubjectCode:            m.SubjectCode,
		SubjectWeeklyFrequency: m.SubjectWeeklyFrequency,
		SubjectDurationMin:     m.SubjectDurationMin,
	}
}
