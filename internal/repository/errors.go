package repository

import apperrors "github.com/abrezinsky/skinvault/internal/errors"

// Sentinel storage errors. They carry an error kind so handlers can map a
// repository failure that reaches them unwrapped.
var (
	ErrNotFound     = apperrors.NotFound("record not found")
	ErrInvalidTable = apperrors.Validation("invalid table name")
)
