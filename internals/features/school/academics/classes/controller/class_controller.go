// file: internals/features/school/academics/classes/controller/class_controller.go
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

	d "timetable_backend/internals/features/school/academics/classes/dto"
	m "timetable_backend/internals/features/school/academics/classes/model"
	helper "timetable_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// PG error mapping, duplicate-code aware
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
   List
   ========================= */

type listClassQuery struct {
	Year    *int   `query:"year"`
	Section string `query:"section"`
	Search  string `query:"q"`
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	var q listClassQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&m.ClassModel{})
	if q.Year != nil {
		db = db.Where("class_year = ?", *q.Year)
	}
	if s := strings.TrimSpace(q.Section); s != "" {
		db = db.Where("class_section = ?", s)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("class_name ILIKE ? OR class_code ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassModel
	if err := db.Order("class_year ASC, class_section ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* =========================
   GetByID
   ========================= */

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ClassModel
	if err := ctl.DB.First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.CreateClassRequest
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
	return helper.JsonCreated(c, "Class created", d.FromModel(&row))
}

/* =========================
   Patch (partial, pointer-based DTO)
   ========================= */

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassModel
	if err := ctl.DB.First(&existing, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateClassRequest
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
	return helper.JsonUpdated(c, "Class updated", d.FromModel(&existing))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassModel
	if err := ctl.DB.First(&existing, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Class deleted", d.FromModel(&existing))
}
