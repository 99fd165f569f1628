// file: internals/features/school/academics/classes/dto/class_dto.go
package dto

import (
	"fmt"

	helper "timetable_backend/internals/helpers"

	"timetable_backend/internals/features/school/academics/classes/model"
)

/* ========== CREATE ========== */

type CreateClassRequest struct {
	ClassName      string `json:"class_name" validate:"required,max=120"`
	ClassYear      int    `json:"class_year" validate:"required,min=1,max=6"`
	ClassSection   string `json:"class_section" validate:"required,max=10"`
	ClassHeadcount int    `json:"class_headcount" validate:"required,min=1"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassName:      r.ClassName,
		ClassYear:      r.ClassYear,
		ClassSection:   r.ClassSection,
		ClassCode:      DeriveClassCode(r.ClassYear, r.ClassSection, r.ClassName),
		ClassHeadcount: r.ClassHeadcount,
	}
}

// DeriveClassCode builds the unique display code, e.g. "3-a-computer-science".
func DeriveClassCode(year int, section, name string) string {
	return helper.GenerateSlug(fmt.Sprintf("%d %s %s", year, section, name))
}

/* ========== UPDATE (pointer-based, also used for PATCH) ========== */

type UpdateClassRequest struct {
	ClassName      *string `json:"class_name" validate:"omitempty,max=120"`
	ClassYear      *int    `json:"class_year" validate:"omitempty,min=1,max=6"`
	ClassSection   *string `json:"class_section" validate:"omitempty,max=10"`
	ClassHeadcount *int    `json:"class_headcount" validate:"omitempty,min=1"`
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassYear != nil {
		m.ClassYear = *r.ClassYear
	}
	if r.ClassSection != nil {
		m.ClassSection = *r.ClassSection
	}
	if r.ClassHeadcount != nil {
		m.ClassHeadcount = *r.ClassHeadcount
	}
	// code follows its source fields
	m.ClassCode = DeriveClassCode(m.ClassYear, m.ClassSection, m.ClassName)
}

/* ========== RESPONSE ========== */

type ClassResponse struct {
	ClassID        string `json:"class_id"`
	ClassName      string `json:"class_name"`
	ClassYear      int    `json:"class_year"`
	ClassSection   string `json:"class_section"`
	ClassCode      string `json:"class_code"`
	ClassHeadcount int    `json:"class_headcount"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        m.ClassID.String(),
		ClassName:      m.ClassName,
		ClassYear:      m.ClassYear,
		ClassSection:   m.ClassSection,
		ClassCode:      m.ClassCode,
		ClassHeadcount: m.ClassHeadcount,
	}
}
