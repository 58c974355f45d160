package handlers_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abrezinsky/skinvault/internal/errors"
	"github.com/abrezinsky/skinvault/internal/handlers"
	"github.com/abrezinsky/skinvault/internal/services"
)

func TestBadRequest_AutoCode(t *testing.T) {
	tests := []struct {
		message      string
		expectedCode string
	}{
		{"Request body is empty", handlers.ErrCodeBadRequest},
		{"Invalid JSON: unexpected EOF", handlers.ErrCodeValidation},
		{"inventory_id is required", handlers.ErrCodeValidation},
		{"validation failed", handlers.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			err := handlers.BadRequest(tt.message)
			if err.Status != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", err.Status)
			}
			if err.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, err.Code)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Message)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	err := handlers.NotFound("resource not found")

	if err.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", err.Status)
	}
	if err.Code != handlers.ErrCodeNotFound {
		t.Errorf("expected code NOT_FOUND, got %q", err.Code)
	}
}

func TestConflict(t *testing.T) {
	err := handlers.Conflict("already taken")

	if err.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", err.Status)
	}
	if err.Code != handlers.ErrCodeConflict {
		t.Errorf("expected code CONFLICT, got %q", err.Code)
	}
}

func TestInternalError(t *testing.T) {
	originalErr := fmt.Errorf("db connection failed")
	err := handlers.InternalError(originalErr)

	if err.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", err.Status)
	}
	// Internal errors should not expose the original message
	if err.Message != "Internal server error" {
		t.Errorf("expected generic message, got %q", err.Message)
	}
	if !stderrors.Is(err, originalErr) {
		t.Error("expected internal error to unwrap to its cause")
	}
}

func TestNewAPIError(t *testing.T) {
	err := handlers.NewAPIError(http.StatusConflict, "CONFLICT", "conflict occurred")

	if err.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", err.Status)
	}
	if err.Code != "CONFLICT" {
		t.Errorf("expected code 'CONFLICT', got %q", err.Code)
	}
	if err.Error() != "conflict occurred" {
		t.Errorf("expected message 'conflict occurred', got %q", err.Error())
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            *handlers.APIError
		expectedStatus int
	}{
		{"ErrBadRequest", handlers.ErrBadRequest, http.StatusBadRequest},
		{"ErrNotFound", handlers.ErrNotFound, http.StatusNotFound},
		{"ErrInternalServer", handlers.ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, tt.err.Status)
			}
		})
	}
}

func TestToAPIError_DirectTests(t *testing.T) {
	tests := []struct {
		name           string
		inputErr       error
		expectedStatus int
		expectedMsg    string
		expectedCode   string
	}{
		{
			name:           "NotFoundError",
			inputErr:       &errors.Error{Kind: errors.ErrNotFound, Message: "resource not found"},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "ValidationError",
			inputErr:       &errors.Error{Kind: errors.ErrValidation, Message: "validation failed"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation failed",
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "InvalidInputError",
			inputErr:       &errors.Error{Kind: errors.ErrInvalidInput, Message: "invalid team \"x\""},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid team \"x\"",
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "ConflictError",
			inputErr:       &errors.Error{Kind: errors.ErrConflict, Message: "no pending choice to skip"},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "no pending choice to skip",
			expectedCode:   "CONFLICT",
		},
		{
			name:           "WrappedNotFound",
			inputErr:       fmt.Errorf("lookup: %w", services.ErrSessionNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "session not found",
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "InternalError_DefaultCase",
			inputErr:       &errors.Error{Kind: errors.ErrInternal, Message: "internal error"},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:           "ServiceError",
			inputErr:       services.ErrEmptyLoadout,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "loadout has no assigned slots",
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "ServiceError_Required",
			inputErr:       services.ErrLoadoutNameRequired,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "loadout name is required",
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "InvalidTableError",
			inputErr:       &services.InvalidTableError{Table: "bad_table"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid table name: bad_table",
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "GenericError",
			inputErr:       fmt.Errorf("generic error"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := handlers.ToAPIError(tt.inputErr)

			if apiErr.Status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, apiErr.Status)
			}
			if apiErr.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, apiErr.Message)
			}
			if apiErr.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, apiErr.Code)
			}
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	setup := newTestSetup(t)

	rec := setup.do(t, http.MethodPost, "/api/inventory", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty body, got %d", rec.Code)
	}
	if !strings.Contains(strings.ToLower(rec.Body.String()), "empty") {
		t.Errorf("expected error to mention 'empty', got %q", rec.Body.String())
	}
}

func TestDecodeJSON_InvalidJSON(t *testing.T) {
	setup := newTestSetup(t)

	rec := setup.do(t, http.MethodPost, "/api/inventory", "{invalid}")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if !strings.Contains(apiErr.Error, "JSON") {
		t.Errorf("expected error to mention 'JSON', got %q", apiErr.Error)
	}
	if apiErr.Code != handlers.ErrCodeValidation {
		t.Errorf("expected code VALIDATION_ERROR, got %q", apiErr.Code)
	}
}

func TestParseIntParam_Invalid(t *testing.T) {
	setup := newTestSetup(t)

	for _, path := range []string{"/api/inventory/abc", "/api/skins/abc"} {
		rec := setup.do(t, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 for invalid int param, got %d", path, rec.Code)
		}
	}
}

func TestParseLimit_Invalid(t *testing.T) {
	setup := newTestSetup(t)

	for _, limit := range []string{"abc", "-1"} {
		rec := setup.do(t, http.MethodGet, "/api/skins?limit="+limit, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", limit, rec.Code)
		}
	}
}

func TestToAPIError_DatabaseClosed(t *testing.T) {
	setup := newTestSetup(t)
	setup.repo.DB().Close()

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	rec := httptest.NewRecorder()
	setup.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for internal error, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "closed") {
		t.Errorf("internal error leaked its cause: %s", rec.Body.String())
	}
}
