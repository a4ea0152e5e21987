package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Booking"), http.StatusNotFound},
		{"not found with id", NotFoundWithID("Booking", "abc"), http.StatusNotFound},
		{"validation", Validation("bad input", nil), http.StatusBadRequest},
		{"invalid input", InvalidInput("bad id"), http.StatusBadRequest},
		{"duplicate user", DuplicateUser("a@b.com"), http.StatusBadRequest},
		{"invalid credentials", InvalidCredentials(), http.StatusBadRequest},
		{"room missing", RoomMissing("101"), http.StatusBadRequest},
		{"room unavailable", RoomUnavailable("taken"), http.StatusBadRequest},
		{"internal", Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("Failed to create booking", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestToJSON_OmitsInternalCause(t *testing.T) {
	err := Internal("Failed to create booking", errors.New("mongo: topology closed"))

	var resp map[string]any
	if unmarshalErr := json.Unmarshal(err.ToJSON(), &resp); unmarshalErr != nil {
		t.Fatalf("ToJSON produced invalid JSON: %v", unmarshalErr)
	}

	if resp["code"] != CodeInternal {
		t.Errorf("expected code %s, got %v", CodeInternal, resp["code"])
	}
	for _, v := range resp {
		if s, ok := v.(string); ok && s == "mongo: topology closed" {
			t.Error("internal cause must not leak into the response body")
		}
	}
}

func TestAsAppError_WrapsUnknownErrors(t *testing.T) {
	appErr := AsAppError(errors.New("plain error"))
	if appErr.Code != CodeInternal {
		t.Errorf("expected %s for a non-AppError, got %s", CodeInternal, appErr.Code)
	}
	if appErr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", appErr.StatusCode())
	}
}
