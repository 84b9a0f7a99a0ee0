package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("mode", "thisYear", "unknown mode")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for mode: unknown mode" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for mode: unknown mode")
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	value, ok := err.Context["value"]
	if !ok || value != "thisYear" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("file", "/home/me/.files/weeks")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "file not found: /home/me/.files/weeks" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.Context["resource"]
	if !ok || resource != "file" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("open", "/root/plan")

	if err.Type != ErrorTypePermission {
		t.Errorf("NewPermissionError type = %v, want %v", err.Type, ErrorTypePermission)
	}
	if err.Message != "permission denied for open on /root/plan" {
		t.Errorf("NewPermissionError message = %v", err.Message)
	}
	if err.Code != "PERMISSION_DENIED" {
		t.Errorf("NewPermissionError code = %v, want %v", err.Code, "PERMISSION_DENIED")
	}
}

func TestNewIOError(t *testing.T) {
	cause := errors.New("input/output error")
	err := NewIOError("read", "/tmp/weeks", cause)

	if err.Type != ErrorTypeIO {
		t.Errorf("NewIOError type = %v, want %v", err.Type, ErrorTypeIO)
	}
	if err.Message != "could not read /tmp/weeks" {
		t.Errorf("NewIOError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewIOError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := NewConfigError("could not parse config file", cause)

	if err.Type != ErrorTypeConfig {
		t.Errorf("NewConfigError type = %v, want %v", err.Type, ErrorTypeConfig)
	}
	if err.Code != "CONFIG_INVALID" {
		t.Errorf("NewConfigError code = %v, want %v", err.Code, "CONFIG_INVALID")
	}
	if err.Cause != cause {
		t.Errorf("NewConfigError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("read weeks", "5s")

	if err.Type != ErrorTypeTimeout {
		t.Errorf("NewTimeoutError type = %v, want %v", err.Type, ErrorTypeTimeout)
	}
	if err.Message != "operation timed out: read weeks" {
		t.Errorf("NewTimeoutError message = %v", err.Message)
	}
}

func TestFromFileError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"missing file", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, ErrorTypeNotFound},
		{"permission denied", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, ErrorTypePermission},
		{"deadline", fmt.Errorf("read: %w", context.DeadlineExceeded), ErrorTypeTimeout},
		{"anything else", errors.New("is a directory"), ErrorTypeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromFileError("open", "/x", tt.err)
			if err.Type != tt.expected {
				t.Errorf("FromFileError type = %v, want %v", err.Type, tt.expected)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("FromFileError should keep the original error as cause")
			}
			if err.Context["operation"] != "open" || err.Context["path"] != "/x" {
				t.Errorf("FromFileError context = %v, want operation and path", err.Context)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeIO}
	wrapped := fmt.Errorf("run: %w", appError)

	result, ok := AsAppError(wrapped)
	if !ok {
		t.Errorf("AsAppError should return true for a wrapped AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeNotFound}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeIO) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Not found error",
			err:      NewNotFoundError("file", "/tmp/weeks"),
			expected: "file not found: /tmp/weeks",
		},
		{
			name:     "IO error",
			err:      NewIOError("read", "/tmp/weeks", errors.New("bad sector")),
			expected: "could not read /tmp/weeks: bad sector",
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("read", "5s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Permission error",
			err:      NewPermissionError("open", "/tmp/plan"),
			expected: "permission denied for open on /tmp/plan",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	appError := &AppError{Code: "NOT_FOUND"}
	regularError := errors.New("regular error")

	if GetErrorCode(appError) != "NOT_FOUND" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}

	if GetErrorCode(regularError) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}
