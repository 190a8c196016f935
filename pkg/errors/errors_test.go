package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "basic error",
			err:      New(ErrCodeFileCreate, "Failed to create workbook"),
			expected: "[PGEN5001] ERROR: Failed to create workbook",
		},
		{
			name: "error with suggestions",
			err: New(ErrCodeFileCreate, "Failed to create workbook").
				WithSuggestions("Check disk space", "Check permissions"),
			expected: "[PGEN5001] ERROR: Failed to create workbook\nSuggestions:\n  1. Check disk space\n  2. Check permissions",
		},
		{
			name: "error with context",
			err: New(ErrCodeFileCreate, "Failed to create workbook").
				WithContext("path", "out.xlsx"),
			expected: "[PGEN5001] ERROR: Failed to create workbook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	baseErr := fmt.Errorf("disk full")

	appErr := Wrap(baseErr, ErrCodeFileWrite, "Failed to save workbook")

	if appErr.Cause != baseErr {
		t.Error("Wrapped error should contain original error as cause")
	}
	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should reach the cause")
	}
	assert.Contains(t, appErr.Error(), "Caused by: disk full")
	assert.Nil(t, Wrap(nil, ErrCodeFileWrite, "nothing"))
}

func TestWrapInheritsContext(t *testing.T) {
	inner := New(ErrCodeSQLExecution, "insert failed").WithContext("table", "FactSLA")
	outer := Wrap(inner, ErrCodeSQLTransaction, "load aborted")

	assert.Equal(t, "FactSLA", outer.Context["table"])
	assert.Equal(t, ErrCodeSQLTransaction, GetErrorCode(outer))
}

func TestIsComparesCodes(t *testing.T) {
	err := EmptyDimensionError("revenue", "region")

	assert.True(t, errors.Is(err, New(ErrCodeEmptyDimension, "")))
	assert.False(t, errors.Is(err, New(ErrCodeFileWrite, "")))
	assert.Equal(t, SeverityCritical, err.Severity)
	assert.Equal(t, "region", err.Context["dimension"])
}

func TestIOErrorPermission(t *testing.T) {
	err := IOError(ErrCodeFileCreate, "cannot create", "/root/x.xlsx", fmt.Errorf("open /root/x.xlsx: permission denied"))

	assert.Equal(t, ErrCodeFilePermission, err.Code)
	assert.NotEmpty(t, err.Suggestions)
	assert.Equal(t, "/root/x.xlsx", err.Context["path"])
}

func TestSQLError(t *testing.T) {
	err := SQLError("insert failed", "INSERT INTO x VALUES (?)", fmt.Errorf("Access denied for user"))
	assert.Equal(t, ErrCodeSQLPermission, err.Code)

	err = SQLError("insert failed", "INSERT INTO x VALUES (?)", fmt.Errorf("syntax error"))
	assert.Equal(t, ErrCodeSQLExecution, err.Code)
	assert.Equal(t, "INSERT INTO x VALUES (?)", err.Context["query"])
}

func TestGetErrorCodeDefault(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetErrorCode(fmt.Errorf("plain")))
}
