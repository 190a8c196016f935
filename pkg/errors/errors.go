package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents a unique error code for categorizing errors
type ErrorCode string

const (
	// Warehouse connection errors (1xxx)
	ErrCodeConnectionFailed     ErrorCode = "PGEN1001"
	ErrCodeAuthenticationFailed ErrorCode = "PGEN1002"
	ErrCodeCredentialsMissing   ErrorCode = "PGEN1003"

	// Configuration errors (2xxx)
	ErrCodeConfigNotFound   ErrorCode = "PGEN2001"
	ErrCodeConfigInvalid    ErrorCode = "PGEN2002"
	ErrCodeConfigPermission ErrorCode = "PGEN2003"
	ErrCodeInvalidDateRange ErrorCode = "PGEN2004"
	ErrCodeUnknownFormat    ErrorCode = "PGEN2005"

	// SQL execution errors (4xxx)
	ErrCodeSQLExecution   ErrorCode = "PGEN4001"
	ErrCodeSQLTransaction ErrorCode = "PGEN4002"
	ErrCodeSQLPermission  ErrorCode = "PGEN4003"

	// File system errors (5xxx)
	ErrCodeFileCreate     ErrorCode = "PGEN5001"
	ErrCodeFileWrite      ErrorCode = "PGEN5002"
	ErrCodeFilePermission ErrorCode = "PGEN5003"
	ErrCodeSinkClosed     ErrorCode = "PGEN5004"

	// Generation errors (6xxx)
	ErrCodeEmptyDimension    ErrorCode = "PGEN6001"
	ErrCodeIntegrityViolated ErrorCode = "PGEN6002"
	ErrCodeUserInput         ErrorCode = "PGEN6003"

	// System errors (9xxx)
	ErrCodeInternal  ErrorCode = "PGEN9001"
	ErrCodeCancelled ErrorCode = "PGEN9002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "CRITICAL" // Run aborted, nothing written
	SeverityError    ErrorSeverity = "ERROR"    // Operation failed
	SeverityWarning  ErrorSeverity = "WARNING"  // Operation succeeded with issues
)

// AppError represents a structured application error with context
type AppError struct {
	Code        ErrorCode
	Message     string
	Severity    ErrorSeverity
	Context     map[string]interface{}
	Cause       error
	Stack       string
	Timestamp   time.Time
	Suggestions []string
}

// Error implements the error interface
func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\nCaused by: %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return b.String()
}

// Unwrap returns the cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityError,
		Context:   make(map[string]interface{}),
		Stack:     captureStack(),
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}

	appErr := New(code, message)
	appErr.Cause = err

	// Inherit context from a wrapped AppError
	var ae *AppError
	if errors.As(err, &ae) {
		for k, v := range ae.Context {
			appErr.Context[k] = v
		}
	}

	return appErr
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity sets the error severity
func (e *AppError) WithSeverity(severity ErrorSeverity) *AppError {
	e.Severity = severity
	return e
}

// WithSuggestions adds recovery suggestions
func (e *AppError) WithSuggestions(suggestions ...string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// captureStack captures the current stack trace
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			b.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return b.String()
}

// Common error constructors

// ConfigError creates a configuration-related error
func ConfigError(message string, field string) *AppError {
	return New(ErrCodeConfigInvalid, message).
		WithContext("field", field).
		WithSuggestions(
			fmt.Sprintf("Check the '%s' configuration value", field),
			"Run 'perfgen init' to write a fresh configuration file",
		)
}

// GenerationError creates an error for a generator stage that cannot proceed
func GenerationError(code ErrorCode, stage, message string) *AppError {
	return New(code, message).
		WithContext("stage", stage).
		WithSeverity(SeverityCritical)
}

// EmptyDimensionError reports sampling from a dimension table with no rows
func EmptyDimensionError(stage, dimension string) *AppError {
	return GenerationError(ErrCodeEmptyDimension, stage,
		fmt.Sprintf("cannot sample from empty %s dimension", dimension)).
		WithContext("dimension", dimension).
		WithSuggestions("Check that the configured catalogue for this dimension is not empty")
}

// IOError creates a file system error for the given path
func IOError(code ErrorCode, message, path string, cause error) *AppError {
	err := New(code, message).WithContext("path", path)
	err.Cause = cause
	if cause != nil && strings.Contains(strings.ToLower(cause.Error()), "permission denied") {
		err.Code = ErrCodeFilePermission
		_ = err.WithSuggestions(
			"Check write permissions on the output location",
			"Close the file if it is open in another program",
		)
	}
	return err
}

// SQLError creates an SQL execution error
func SQLError(message string, query string, cause error) *AppError {
	err := New(ErrCodeSQLExecution, message).
		WithContext("query", truncateString(query, 200))
	err.Cause = cause
	if cause == nil {
		return err
	}

	lower := strings.ToLower(cause.Error())
	if strings.Contains(lower, "permission") || strings.Contains(lower, "access denied") {
		err.Code = ErrCodeSQLPermission
		_ = err.WithSuggestions(
			"Verify the warehouse role can create tables in the target schema",
		)
	}

	return err
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
