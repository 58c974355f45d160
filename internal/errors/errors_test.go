package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    Kind
		message string
	}{
		{"NotFound", NotFound("skin not found"), ErrNotFound, "skin not found"},
		{"NotFoundf", NotFoundf("session %s not found", "ab12"), ErrNotFound, "session ab12 not found"},
		{"Validation", Validation("name is required"), ErrValidation, "name is required"},
		{"Validationf", Validationf("%d entries over limit", 3), ErrValidation, "3 entries over limit"},
		{"Conflict", Conflict("no pending choice"), ErrConflict, "no pending choice"},
		{"Conflictf", Conflictf("item %d exhausted", 7), ErrConflict, "item 7 exhausted"},
		{"InvalidInput", InvalidInput("bad team"), ErrInvalidInput, "bad team"},
		{"InvalidInputf", InvalidInputf("invalid team %q", "Both"), ErrInvalidInput, `invalid team "Both"`},
		{"Internalf", Internalf("catalog %s", "broken"), ErrInternal, "catalog broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, tt.err.Kind)
			}
			if tt.err.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Message)
			}
			if tt.err.Err != nil {
				t.Errorf("expected no wrapped error, got %v", tt.err.Err)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected Error() = %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause)

	if err.Kind != ErrInternal {
		t.Errorf("expected internal kind, got %v", err.Kind)
	}
	if err.Error() != "internal error: disk full" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(sql.ErrNoRows, ErrNotFound, "loadout not found")

	if err.Kind != ErrNotFound {
		t.Errorf("expected not found, got %v", err.Kind)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		t.Error("expected wrapped sql.ErrNoRows")
	}
	if err.Unwrap() != sql.ErrNoRows {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", Conflict("x"), ErrConflict},
		{"wrapped with fmt", fmt.Errorf("resolve: %w", InvalidInput("x")), ErrInvalidInput},
		{"plain error", errors.New("boom"), ErrInternal},
		{"nil", nil, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	if !IsNotFound(NotFoundf("slot %q", "bazooka")) {
		t.Error("expected IsNotFound")
	}
	if IsNotFound(Validation("x")) {
		t.Error("expected validation not to be not found")
	}
	if IsKind(nil, ErrInternal) {
		t.Error("expected nil to match no kind")
	}
	if !IsKind(errors.New("plain"), ErrInternal) {
		t.Error("expected plain errors to count as internal")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		ErrInternal:     "internal",
		ErrNotFound:     "not_found",
		ErrValidation:   "validation",
		ErrConflict:     "conflict",
		ErrInvalidInput: "invalid_input",
		Kind(42):        "internal",
	}
	for kind, want := range tests {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}
