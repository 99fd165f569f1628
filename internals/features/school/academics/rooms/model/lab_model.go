// file: internals/features/school/academics/rooms/model/lab_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LabModel struct {
	LabID uuid.UUID `json:"lab_id" gorm:"type:uuid;primaryKey;column:lab_id;default:gen_random_uuid()"`

	LabName string `json:"lab_name" gorm:"type:text;not null;column:lab_name"`
	LabCode string `json:"lab_code" gorm:"type:varchar(40);not null;column:lab_code"`

	LabCapacity int `json:"lab_capacity" gorm:"not null;default:0;column:lab_capacity"`

	// physical rooms the lab may use (room uuids)
	LabRoomIDs pq.StringArray `json:"lab_room_ids" gorm:"type:text[];column:lab_room_ids"`

	LabCreatedAt time.Time      `json:"lab_created_at" gorm:"column:lab_created_at;autoCreateTime"`
	LabUpdatedAt time.Time      `json:"lab_updated_at" gorm:"column:lab_updated_at;autoUpdateTime"`
	LabDeletedAt gorm.DeletedAt `json:"lab_deleted_at,omitempty" gorm:"column:lab_deleted_at;index"`
}

func (LabModel) TableName() string { return "labs" }
