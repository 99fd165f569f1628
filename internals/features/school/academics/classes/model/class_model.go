// file: internals/features/school/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	ClassName    string `json:"class_name" gorm:"type:text;not null;column:class_name"`
	ClassYear    int    `json:"class_year" gorm:"not null;column:class_year"`
	ClassSection string `json:"class_section" gorm:"type:varchar(10);not null;column:class_section"`

	// derived from year-section-name, unique while alive (partial index in migration)
	ClassCode string `json:"class_code" gorm:"type:varchar(120);not null;column:class_code"`

	// student headcount used by the capacity check
	ClassHeadcount int `json:"class_headcount" gorm:"not null;default:0;column:class_headcount"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string { return "classes" }
