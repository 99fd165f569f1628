// file: internals/features/school/academics/teachers/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/academics/teachers/controller"
)

func TeacherPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := public.Group("/teachers")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
}

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := admin.Group("/teachers")
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}
