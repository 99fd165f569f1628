// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "timetable_backend/internals/features/school/academics/classes/route"
	roomRoute "timetable_backend/internals/features/school/academics/rooms/route"
	subjectRoute "timetable_backend/internals/features/school/academics/subjects/route"
	teacherRoute "timetable_backend/internals/features/school/academics/teachers/route"
	exportRoute "timetable_backend/internals/features/school/timetable/exports/route"
	sessionRoute "timetable_backend/internals/features/school/timetable/sessions/route"
	authRoute "timetable_backend/internals/features/users/auth/route"
	userModel "timetable_backend/internals/features/users/user/model"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC (read-only) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	classRoute.ClassPublicRoutes(public, db)
	subjectRoute.SubjectPublicRoutes(public, db)
	teacherRoute.TeacherPublicRoutes(public, db)
	roomRoute.RoomPublicRoutes(public, db)
	sessionRoute.SessionPublicRoutes(public, db)
	exportRoute.ExportPublicRoutes(public, db)

	// ===================== ADMIN (JWT + role) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRoles(userModel.RoleAdmin, userModel.RoleStaff),
	)

	classRoute.ClassAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	roomRoute.RoomAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)

	// ===================== MISC =====================
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
