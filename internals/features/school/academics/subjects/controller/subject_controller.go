// file: internals/features/school/academics/subjects/controller/subject_controller.go
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

	d "timetable_backend/internals/features/school/academics/subjects/dto"
	m "timetable_backend/internals/features/school/academics/subjects/model"
	helper "timetable_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
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

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&m.SubjectModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		db = db.Where("subject_name ILIKE ? OR subject_code ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.SubjectModel
	if err := db.Order("subject_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.SubjectModel
	if err := ctl.DB.First(&row, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(&row))
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
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
	return helper.JsonCreated(c, "Subject created", d.FromModel(&row))
}

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SubjectModel
	if err := ctl.DB.First(&existing, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateSubjectRequest
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
	return helper.JsonUpdated(c, "Subject updated", d.FromModel(&existing))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SubjectModel
	if err := ctl.DB.First(&existing, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Subject deleted", d.FromModel(&existing))
}
