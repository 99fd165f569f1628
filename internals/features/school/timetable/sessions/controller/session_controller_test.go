// file: internals/features/school/timetable/sessions/controller/session_controller_test.go
package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writePGError(c, err)
	})
	resp, terr := app.Test(httptest.NewRequest("GET", "/", nil))
	if terr != nil {
		t.Fatalf("app.Test: %v", terr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// The gorm postgres driver surfaces constraint violations as
// *pgconn.PgError; the mapper must recognize them, not just lib/pq's type.
func TestWritePGErrorMapsPgxErrors(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"23P01", fiber.StatusConflict},
		{"23505", fiber.StatusConflict},
		{"23503", fiber.StatusBadRequest},
		{"42P01", fiber.StatusInternalServerError},
	}
	for _, cse := range cases {
		got := statusFor(t, &pgconn.PgError{Code: cse.code})
		if got != cse.want {
			t.Errorf("SQLSTATE %s mapped to %d, want %d", cse.code, got, cse.want)
		}
	}
}

func TestWritePGErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create session: %w", &pgconn.PgError{Code: "23505"})
	if got := statusFor(t, wrapped); got != fiber.StatusConflict {
		t.Errorf("wrapped unique violation mapped to %d, want %d", got, fiber.StatusConflict)
	}
}

func TestWritePGErrorPlainErrorIs500(t *testing.T) {
	if got := statusFor(t, fmt.Errorf("connection refused")); got != fiber.StatusInternalServerError {
		t.Errorf("plain error mapped to %d, want 500", got)
	}
}
