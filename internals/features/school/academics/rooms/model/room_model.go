// file: internals/features/school/academics/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomName string `json:"room_name" gorm:"type:text;not null;column:room_name"`
	RoomCode string `json:"room_code" gorm:"type:varchar(40);not null;column:room_code"`

	// seating capacity checked against class headcount
	RoomCapacity int `json:"room_capacity" gorm:"not null;default:0;column:room_capacity"`

	RoomFeatures datatypes.JSON `json:"room_features" gorm:"type:jsonb;not null;default:'[]';column:room_features"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at,omitempty" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string { return "rooms" }
