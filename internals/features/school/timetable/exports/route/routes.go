// file: internals/features/school/timetable/exports/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/timetable/exports/controller"
)

// Public: timetable downloads.
func ExportPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db)
	public.Get("/classes/:class_id/timetable/export", h.Export)
}
