// file: internals/features/school/timetable/sessions/controller/timetable_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/school/timetable/grid"
	svc "timetable_backend/internals/features/school/timetable/sessions/service"
	helper "timetable_backend/internals/helpers"
)

/* =========================
   Weekly grid (per class)
   ========================= */

// Timetable returns the materialized weekly grid for one class.
// GET /classes/:class_id/timetable
func (ctl *SessionController) Timetable(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	mat := grid.New(svc.NewStore(ctl.DB.WithContext(c.Context())))
	g, err := mat.BuildGrid(c.Context(), classID)
	if err != nil {
		if errors.Is(err, grid.ErrClassNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", g)
}
