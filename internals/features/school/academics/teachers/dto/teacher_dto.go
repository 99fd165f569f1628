// file: internals/features/school/academics/teachers/dto/teacher_dto.go
package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"timetable_backend/internals/features/school/academics/teachers/model"
)

/* ========== CREATE ========== */

type CreateTeacherRequest struct {
	TeacherName       string   `json:"teacher_name" validate:"required,max=160"`
	TeacherAbbr       string   `json:"teacher_abbr" validate:"required,max=10"`
	TeacherEmail      *string  `json:"teacher_email" validate:"omitempty,email"`
	TeacherSubjectIDs []string `json:"teacher_subject_ids" validate:"omitempty,dive,uuid"`
}

func (r CreateTeacherRequest) ToModel() (model.TeacherModel, error) {
	m := model.TeacherModel{
		TeacherName:  r.TeacherName,
		TeacherAbbr:  r.TeacherAbbr,
		TeacherEmail: r.TeacherEmail,
	}
	if err := setJSONFromStrings(&m.TeacherSubjectIDs, r.TeacherSubjectIDs); err != nil {
		return m, err
	}
	return m, nil
}

// ergonomic JSONB in the DTO → native slice
func setJSONFromStrings(dst *datatypes.JSON, src []string) error {
	if src == nil {
		src = []string{}
	}
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	*dst = datatypes.JSON(b)
	return nil
}

/* ========== UPDATE ========== */

type UpdateTeacherRequest struct {
	TeacherName       *string  `json:"teacher_name" validate:"omitempty,max=160"`
	TeacherAbbr       *string  `json:"teacher_abbr" validate:"omitempty,max=10"`
	TeacherEmail      *string  `json:"teacher_email" validate:"omitempty,email"`
	TeacherSubjectIDs []string `json:"teacher_subject_ids" validate:"omitempty,dive,uuid"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) error {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherAbbr != nil {
		m.TeacherAbbr = *r.TeacherAbbr
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherSubjectIDs != nil {
		if err := setJSONFromStrings(&m.TeacherSubjectIDs, r.TeacherSubjectIDs); err != nil {
			return err
		}
	}
	return nil
}

/* ========== RESPONSE ========== */

type TeacherResponse struct {
	TeacherID         string   `json:"teacher_id"`
	TeacherName       string   `json:"teacher_name"`
	TeacherAbbr       string   `json:"teacher_abbr"`
	TeacherEmail      *string  `json:"teacher_email,omitempty"`
	TeacherSubjectIDs []string `json:"teacher_subject_ids"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	ids := []string{}
	_ = json.Unmarshal(m.TeacherSubjectIDs, &ids)
	return TeacherResponse{
		TeacherID:         m.TeacherID.String(),
		TeacherName:       m.TeacherName,
		TeacherAbbr:       m.TeacherAbbr,
		TeacherEmail:      m.TeacherEmail,
		TeacherSubjectIDs: ids,
	}
}
