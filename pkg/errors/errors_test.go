package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationMapsToBadRequest(t *testing.T) {
	err := Validation("Validation error", []map[string]string{
		{"field": "service", "message": "service must be one of: vaccination treatment surgery"},
	})

	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode())
	}
	if err.Code != CodeValidation {
		t.Errorf("expected %s, got %s", CodeValidation, err.Code)
	}
	if err.Details == nil {
		t.Error("expected details to be preserved")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NotFound("Doctor"), http.StatusNotFound},
		{NotFoundWithID("Booking", "abc"), http.StatusNotFound},
		{InvalidInput("bad id"), http.StatusBadRequest},
		{Conflict("booking code already exists"), http.StatusConflict},
		{ResourceExhausted("code space exhausted"), http.StatusServiceUnavailable},
		{Internal("boom", nil), http.StatusInternalServerError},
		{Timeout("store call timed out"), http.StatusGatewayTimeout},
		{Unavailable("database"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		if tt.err.StatusCode() != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.err.Code, tt.status, tt.err.StatusCode())
		}
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal("Failed to create booking", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestAsAppErrorNormalizesUnknownErrors(t *testing.T) {
	plain := errors.New("driver: bad connection")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected %s, got %s", CodeInternal, appErr.Code)
	}
	if appErr.Message == plain.Error() {
		t.Error("internal error text must not leak to callers")
	}

	already := Conflict("duplicate")
	if AsAppError(already) != already {
		t.Error("expected AppError to pass through unchanged")
	}
}
