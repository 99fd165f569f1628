// file: internals/features/school/academics/subjects/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/academics/subjects/controller"
)

func SubjectPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := public.Group("/subjects")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
}

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())
	grp := admin.Group("/subjects")
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}
