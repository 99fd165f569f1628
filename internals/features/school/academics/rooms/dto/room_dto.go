// file: internals/features/school/academics/rooms/dto/room_dto.go
package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"timetable_backend/internals/features/school/academics/rooms/model"
)

/* ========== ROOMS ========== */

type CreateRoomRequest struct {
	RoomName     string   `json:"room_name" validate:"required,max=120"`
	RoomCode     string   `json:"room_code" validate:"required,max=40"`
	RoomCapacity int      `json:"room_capacity" validate:"required,min=1"`
	RoomFeatures []string `json:"room_features" validate:"omitempty,dive,printascii"`
}

func (r CreateRoomRequest) ToModel() (model.RoomModel, error) {
	m := model.RoomModel{
		RoomName:     r.RoomName,
		RoomCode:     r.RoomCode,
		RoomCapacity: r.RoomCapacity,
	}
	if err := setJSONFromStrings(&m.RoomFeatures, r.RoomFeatures); err != nil {
		return m, err
	}
	return m, nil
}

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

type UpdateRoomRequest struct {
	RoomName     *string  `json:"room_name" validate:"omitempty,max=120"`
	RoomCode     *string  `json:"room_code" validate:"omitempty,max=40"`
	RoomCapacity *int     `json:"room_capacity" validate:"omitempty,min=1"`
	RoomFeatures []string `json:"room_features" validate:"omitempty,dive,printascii"`
}

func (r UpdateRoomRequest) Apply(m *model.RoomModel) error {
	if r.RoomName != nil {
		m.RoomName = *r.RoomName
	}
	if r.RoomCode != nil {
		m.RoomCode = *r.RoomCode
	}
	if r.RoomCapacity != nil {
		m.RoomCapacity = *r.RoomCapacity
	}
	if r.RoomFeatures != nil {
		return setJSONFromStrings(&m.RoomFeatures, r.RoomFeatures)
	}
	return nil
}

type RoomResponse struct {
	RoomID       string   `json:"room_id"`
	RoomName     string   `json:"room_name"`
	RoomCode     string   `json:"room_code"`
	RoomCapacity int      `json:"room_capacity"`
	RoomFeatures []string `json:"room_features"`
}

func RoomFromModel(m *model.RoomModel) RoomResponse {
	features := []string{}
	_ = json.Unmarshal(m.RoomFeatures, &features)
	return RoomResponse{
		RoomID:       m.RoomID.String(),
		RoomName:     m.RoomName,
		RoomCode:     m.RoomCode,
		RoomCapacity: m.RoomCapacity,
		RoomFeatures: features,
	}
}

/* ========== LABS ========== */

type CreateLabRequest struct {
	LabName     string   `json:"lab_name" validate:"required,max=120"`
	LabCode     string   `json:"lab_code" validate:"required,max=40"`
	LabCapacity int      `json:"lab_capacity" validate:"required,min=1"`
	LabRoomIDs  []string `json:"lab_room_ids" validate:"omitempty,dive,uuid"`
}

func (r CreateLabRequest) ToModel() model.LabModel {
	return model.LabModel{
		LabName:     r.LabName,
		LabCode:     r.LabCode,
		LabCapacity: r.LabCapacity,
		LabRoomIDs:  r.LabRoomIDs,
	}
}

type UpdateLabRequest struct {
	LabName     *string  `json:"lab_name" validate:"omitempty,max=120"`
	LabCode     *string  `json:"lab_code" validate:"omitempty,max=40"`
	LabCapacity *int     `json:"lab_capacity" validate:"omitempty,min=1"`
	LabRoomIDs  []string `json:"lab_room_ids" validate:"omitempty,dive,uuid"`
}

func (r UpdateLabRequest) Apply(m *model.LabModel) {
	if r.LabName != nil {
		m.LabName = *r.LabName
	}
	if r.LabCode != nil {
		m.LabCode = *r.LabCode
	}
	if r.LabCapacity != nil {
		m.LabCapacity = *r.LabCapacity
	}
	if r.LabRoomIDs != nil {
		m.LabRoomIDs = r.LabRoomIDs
	}
}

type LabResponse struct {
	LabID       string   `json:"lab_id"`
	LabName     string   `json:"lab_name"`
	LabCode     string   `json:"lab_code"`
	LabCapacity int      `json:"lab_capacity"`
	LabRoomIDs  []string `json:"lab_room_ids"`
}

func LabFromModel(m *model.LabModel) LabResponse {
	ids := m.LabRoomIDs
	if ids == nil {
		ids = []string{}
	}
	return LabResponse{
		LabID:       m.LabID.String(),
		LabName:     m.LabName,
		LabCode:     m.LabCode,
		LabCapacity: m.LabCapacity,
		LabRoomIDs:  ids,
	}
}
