// file: internals/features/users/auth/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/users/auth/controller"
	"timetable_backend/internals/middlewares"
	authmw "timetable_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), authmw.OptionalAuthJWT(), h.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	grp.Post("/refresh", h.Refresh)
	grp.Get("/me", authmw.AuthJWT(), h.Me)
}
