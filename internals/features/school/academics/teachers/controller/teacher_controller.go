// file: internals/features/school/academics/teachers/controller/teacher_controller.go
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

	d "timetable_backend/internals/features/school/academics/teachers/dto"
	m "timetable_backend/internals/features/school/academics/teachers/model"
	helper "timetable_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
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

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&m.TeacherModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		db = db.Where("teacher_name ILIKE ? OR teacher_abbr ILIKE ?", "%"+s+"%", "%"+s+"%")
	}
	// filter guru yang boleh mengajar subject tertentu (JSONB containment)
	if s := strings.TrimSpace(c.Query("subject_id")); s != "" {
		if _, err := uuid.Parse(s); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "subject_id invalid")
		}
		db = db.Where("teacher_subject_ids @> ?", fmt.Sprintf(`["%s"]`, s))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.TeacherModel
	if err := db.Order("teacher_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.TeacherModel
	if err := ctl.DB.First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(&row))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
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
	return helper.JsonCreated(c, "Teacher created", d.FromModel(&row))
}

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TeacherModel
	if err := ctl.DB.First(&existing, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateTeacherRequest
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
	return helper.JsonUpdated(c, "Teacher updated", d.FromModel(&existing))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TeacherModel
	if err := ctl.DB.First(&existing, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted", d.FromModel(&existing))
}
