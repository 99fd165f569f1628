// file: internals/features/school/academics/rooms/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "timetable_backend/internals/features/school/academics/rooms/controller"
)

func RoomPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	rooms := public.Group("/rooms")
	rooms.Get("/", h.ListRooms)
	rooms.Get("/:id", h.GetRoomByID)

	labs := public.Group("/labs")
	labs.Get("/", h.ListLabs)
	labs.Get("/:id", h.GetLabByID)
}

func RoomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	rooms := admin.Group("/rooms")
	rooms.Post("/", h.CreateRoom)
	rooms.Patch("/:id", h.PatchRoom)
	rooms.Delete("/:id", h.DeleteRoom)

	labs := admin.Group("/labs")
	labs.Post("/", h.CreateLab)
	labs.Patch("/:id", h.PatchLab)
	labs.Delete("/:id", h.DeleteLab)
}
