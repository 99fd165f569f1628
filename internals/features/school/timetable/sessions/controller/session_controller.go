// file: internals/features/school/timetable/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/timetable/conflict"
	d "timetable_backend/internals/features/school/timetable/sessions/dto"
	m "timetable_backend/internals/features/school/timetable/sessions/model"
	svc "timetable_backend/internals/features/school/timetable/sessions/service"
	helper "timetable_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// PG error mapping. The SQLState interface matches both pgx (the gorm
// postgres driver) and lib/pq error types.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return helper.JsonError(c, http.StatusConflict, "schedule overlap (exclusion violation)")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "duplicate session (unique violation)")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "referenced record not found (FK violation)")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func writeValidationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
		return helper.JsonValidationError(c, fields)
	}
	return helper.JsonError(c, http.StatusBadRequest, err.Error())
}

// errConflict carries the engine's verdict out of the write transaction.
type errConflict struct{ c *conflict.Conflict }

func (e errConflict) Error() string { return string(e.c.Kind) + ": " + e.c.Message }

// validateInTx runs the engine against tx-bound (locked) rows. Returning an
// error rolls the surrounding transaction back.
func validateInTx(c *fiber.Ctx, tx *gorm.DB, row *m.ClassSessionModel) error {
	engine := conflict.New(svc.NewStore(tx))
	cf, err := engine.Validate(c.Context(), row.Candidate())
	if err != nil {
		return err
	}
	if cf != nil {
		return errConflict{cf}
	}
	return nil
}

// writeRejection maps the engine's verdict onto the response taxonomy:
// INVALID_DATA → 422, everything else → 409 with the conflict payload.
func writeRejection(c *fiber.Ctx, cf *conflict.Conflict) error {
	if cf.Kind == conflict.KindInvalidData {
		return helper.JsonError(c, http.StatusUnprocessableEntity, cf.Message)
	}
	return helper.JsonScheduleConflict(c, cf)
}

/* =========================
   List
   ========================= */

type listSessionQuery struct {
	ClassID   string `query:"class_id"`
	TeacherID string `query:"teacher_id"`
	DayOfWeek *int   `query:"dow"`
}

func (ctl *SessionController) List(c *fiber.Ctx) error {
	var q listSessionQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 50, 500)

	db := ctl.DB.Model(&m.ClassSessionModel{})
	if s := strings.TrimSpace(q.ClassID); s != "" {
		if _, err := uuid.Parse(s); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("class_session_class_id = ?", s)
	}
	if s := strings.TrimSpace(q.TeacherID); s != "" {
		if _, err := uuid.Parse(s); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		db = db.Where("class_session_teacher_id = ? OR class_session_assistant_teacher_id = ?", s, s)
	}
	if q.DayOfWeek != nil {
		if *q.DayOfWeek < 1 || *q.DayOfWeek > 6 {
			return helper.JsonError(c, http.StatusBadRequest, "dow must be 1..6")
		}
		db = db.Where("class_session_day_of_week = ?", *q.DayOfWeek)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassSessionModel
	if err := db.Order("class_session_day_of_week ASC, class_session_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* =========================
   GetByID
   ========================= */

func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ClassSessionModel
	if err := ctl.DB.First(&row, "class_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req d.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// read-validate-write in one transaction; the engine's same-day read
	// locks the rows so concurrent candidates serialize
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := validateInTx(c, tx, &row); err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if txErr != nil {
		var ec errConflict
		if errors.As(txErr, &ec) {
			return writeRejection(c, ec.c)
		}
		return writePGError(c, txErr)
	}

	return helper.JsonCreated(c, "Session created", d.FromModel(&row))
}

/* =========================
   Patch
   ========================= */

func (ctl *SessionController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassSessionModel
	if err := ctl.DB.First(&existing, "class_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := validateInTx(c, tx, &existing); err != nil {
			return err
		}
		return tx.Save(&existing).Error
	})
	if txErr != nil {
		var ec errConflict
		if errors.As(txErr, &ec) {
			return writeRejection(c, ec.c)
		}
		return writePGError(c, txErr)
	}

	return helper.JsonUpdated(c, "Session updated", d.FromModel(&existing))
}

/* =========================
   Delete
   ========================= */

func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassSessionModel
	if err := ctl.DB.First(&existing, "class_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Session deleted", d.FromModel(&existing))
}
