// file: internals/features/school/academics/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "timetable_backend/internals/features/school/academics/rooms/dto"
	m "timetable_backend/internals/features/school/academics/rooms/model"
	helper "timetable_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "duplicate value (unique violation)")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "referenced record not found (FK violation)")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   Rooms
   ========================= */

func (ctl *RoomController) ListRooms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&m.RoomModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		db = db.Where("room_name ILIKE ? OR room_code ILIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if s := strings.TrimSpace(c.Query("min_capacity")); s != "" {
		db = db.Where("room_capacity >= ?", s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.RoomModel
	if err := db.Order("room_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.RoomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.RoomFromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *RoomController) GetRoomByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.RoomModel
	if err := ctl.DB.First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.RoomFromModel(&row))
}

func (ctl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Room created", d.RoomFromModel(&row))
}

func (ctl *RoomController) PatchRoom(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.RoomModel
	if err := ctl.DB.First(&existing, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Room updated", d.RoomFromModel(&existing))
}

func (ctl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.RoomModel
	if err := ctl.DB.First(&existing, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Room deleted", d.RoomFromModel(&existing))
}

/* =========================
   Labs
   ========================= */

func (ctl *RoomController) ListLabs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&m.LabModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		db = db.Where("lab_name ILIKE ? OR lab_code ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.LabModel
	if err := db.Order("lab_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.LabResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.LabFromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *RoomController) GetLabByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.LabModel
	if err := ctl.DB.First(&row, "lab_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lab not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.LabFromModel(&row))
}

func (ctl *RoomController) CreateLab(c *fiber.Ctx) error {
	var req d.CreateLabRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Lab created", d.LabFromModel(&row))
}

func (ctl *RoomController) PatchLab(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LabModel
	if err := ctl.DB.First(&existing, "lab_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lab not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateLabRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Lab updated", d.LabFromModel(&existing))
}

func (ctl *RoomController) DeleteLab(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LabModel
	if err := ctl.DB.First(&existing, "lab_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lab not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Lab deleted", d.LabFromModel(&existing))
}
