// file: internals/features/school/academics/classes/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/academics/classes/controller"
)

// Public: read-only listing & detail.
func ClassPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := public.Group("/classes")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
}

// Admin: mutations.
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := admin.Group("/classes")
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}
