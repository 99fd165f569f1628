// file: internals/features/school/timetable/sessions/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/timetable/sessions/controller"
)

// Public: session listing, detail, and the per-class weekly grid.
func SessionPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := public.Group("/sessions")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)

	public.Get("/classes/:class_id/timetable", h.Timetable)
}

// Admin: mutations, each guarded by the conflict engine.
func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/sessions")
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}
