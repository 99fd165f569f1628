// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	SubjectName string `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	SubjectCode string `json:"subject_code" gorm:"type:varchar(40);not null;column:subject_code"`

	// cap on sessions of this subject per class per week
	SubjectWeeklyFrequency int `json:"subject_weekly_frequency" gorm:"not null;default:1;column:subject_weekly_frequency"`

	// nominal duration in minutes
	SubjectDurationMin int `json:"subject_duration_min" gorm:"not null;default:50;column:subject_duration_min"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }
