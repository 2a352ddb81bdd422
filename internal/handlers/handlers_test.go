package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"platewatch/internal/db"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate user", db.ErrDuplicateUser, http.StatusConflict},
		{"user not found", db.ErrUserNotFound, http.StatusNotFound},
		{"price update not found", db.ErrPriceUpdateNotFound, http.StatusNotFound},
		{"claim request not found", db.ErrClaimRequestNotFound, http.StatusNotFound},
		{"unknown submitter", db.ErrUnknownSubmitter, http.StatusBadRequest},
		{"wrapped sentinel", errors.Join(errors.New("ctx"), db.ErrUserNotFound), http.StatusNotFound},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return respondError(c, tt.err)
			})

			req, _ := http.NewRequest("GET", "/", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestNilIfEmpty(t *testing.T) {
	if got := nilIfEmpty(""); got != nil {
		t.Errorf("nilIfEmpty(\"\") = %v, want nil", got)
	}
	if got := nilIfEmpty("x"); got == nil || *got != "x" {
		t.Errorf("nilIfEmpty(\"x\") = %v, want pointer to \"x\"", got)
	}
}
