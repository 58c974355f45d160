package services_test

import (
	"strings"
	"testing"

	apperrors "github.com/abrezinsky/skinvault/internal/errors"
	"github.com/abrezinsky/skinvault/internal/services"
)

func TestServiceError_Error(t *testing.T) {
	err := &services.ServiceError{Message: "test error message"}

	result := err.Error()

	if result != "test error message" {
		t.Errorf("expected 'test error message', got %q", result)
	}
}

func TestInvalidTableError_Error(t *testing.T) {
	err := &services.InvalidTableError{Table: "bad_table"}

	result := err.Error()

	if !strings.Contains(result, "bad_table") {
		t.Errorf("expected error to contain 'bad_table', got %q", result)
	}
	if !strings.Contains(result, "invalid table") {
		t.Errorf("expected error to mention 'invalid table', got %q", result)
	}
}

func TestPredefinedErrors(t *testing.T) {
	// Test that predefined errors return expected messages
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"ErrNoTablesSpecified", services.ErrNoTablesSpecified, "tables"},
		{"ErrLoadoutNameRequired", services.ErrLoadoutNameRequired, "name"},
		{"ErrEmptyLoadout", services.ErrEmptyLoadout, "no assigned"},
		{"ErrAssignSource", services.ErrAssignSource, "exactly one"},
		{"ErrInvalidPrice", services.ErrInvalidPrice, "price"},
		{"ErrCatalogURLNotConfigured", services.ErrCatalogURLNotConfigured, "catalog url"},
		{"ErrBaseURLNotConfigured", services.ErrBaseURLNotConfigured, "base url"},
		{"ErrSessionNotFound", services.ErrSessionNotFound, "session"},
		{"ErrLoadoutNotFound", services.ErrLoadoutNotFound, "loadout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if !strings.Contains(strings.ToLower(msg), tt.contains) {
				t.Errorf("expected error message to contain %q, got %q", tt.contains, msg)
			}
		})
	}
}

func TestLookupErrors_AreNotFound(t *testing.T) {
	for _, err := range []error{
		services.ErrSessionNotFound,
		services.ErrSkinNotFound,
		services.ErrInventoryItemNotFound,
		services.ErrLoadoutNotFound,
	} {
		if !apperrors.IsNotFound(err) {
			t.Errorf("expected %q to be a not-found error", err)
		}
	}
}
