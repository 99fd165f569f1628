// file: internals/features/school/timetable/exports/controller/export_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classmodel "timetable_backend/internals/features/school/academics/classes/model"
	xsvc "timetable_backend/internals/features/school/timetable/exports/service"
	"timetable_backend/internals/features/school/timetable/grid"
	svc "timetable_backend/internals/features/school/timetable/sessions/service"
	helper "timetable_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ExportController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Export (xlsx | pdf | csv)
   ========================= */

// Export streams the class's weekly grid in the requested format.
// GET /classes/:class_id/timetable/export?format=xlsx
func (ctl *ExportController) Export(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("format", "xlsx")))
	switch format {
	case "xlsx", "pdf", "csv":
	default:
		return helper.JsonError(c, http.StatusBadRequest, "format must be one of xlsx, pdf, csv")
	}

	var cls classmodel.ClassModel
	if err := ctl.DB.First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	mat := grid.New(svc.NewStore(ctl.DB.WithContext(c.Context())))
	g, err := mat.BuildGrid(c.Context(), classID)
	if err != nil {
		if errors.Is(err, grid.ErrClassNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	title := fmt.Sprintf("Weekly Timetable %d %s %s", cls.ClassYear, cls.ClassSection, cls.ClassName)
	filename := fmt.Sprintf("timetable-%s.%s", cls.ClassCode, format)

	var (
		body        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		body, err = xsvc.RenderXLSX(g, title)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		body, err = xsvc.RenderPDF(g, title)
		contentType = "application/pdf"
	case "csv":
		body, err = xsvc.RenderCSV(g)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(body)
}
