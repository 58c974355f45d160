package services

import (
	"fmt"

	"github.com/abrezinsky/skinvault/internal/errors"
)

// Lookup errors carry an errors.Kind so handlers can map them to 404
var (
	ErrSessionNotFound       = errors.NotFound("session not found")
	ErrSkinNotFound          = errors.NotFound("skin not found")
	ErrInventoryItemNotFound = errors.NotFound("inventory item not found")
	ErrLoadoutNotFound       = errors.NotFound("loadout not found")
)

// Service errors
var (
	ErrNoTablesSpecified       = &ServiceError{Message: "no tables specified"}
	ErrLoadoutNameRequired     = &ServiceError{Message: "loadout name is required"}
	ErrEmptyLoadout            = &ServiceError{Message: "loadout has no assigned slots"}
	ErrAssignSource            = &ServiceError{Message: "exactly one of skin_id, inventory_id or skin_name is required"}
	ErrInvalidPrice            = &ServiceError{Message: "price must not be negative"}
	ErrCatalogURLNotConfigured = &ServiceError{Message: "catalog URL is not configured"}
	ErrBaseURLNotConfigured    = &ServiceError{Message: "base URL is not configured"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// InvalidTableError represents an invalid table name error
type InvalidTableError struct {
	Table string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("invalid table name: %s", e.Table)
}
