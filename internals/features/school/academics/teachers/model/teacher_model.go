// file: internals/features/school/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherName string `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`

	// short display form used in grid cells, e.g. "APR"
	TeacherAbbr string `json:"teacher_abbr" gorm:"type:varchar(10);not null;column:teacher_abbr"`

	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"type:varchar(160);column:teacher_email"`

	// subject ids this teacher may teach; referential only, the conflict
	// engine never validates eligibility against it
	TeacherSubjectIDs datatypes.JSON `json:"teacher_subject_ids" gorm:"type:jsonb;not null;default:'[]';column:teacher_subject_ids"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
