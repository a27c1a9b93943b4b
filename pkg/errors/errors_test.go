package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateSpaceName, "board space %q already exists", "Tax")

	if err.Code != ErrCodeDuplicateSpaceName {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDuplicateSpaceName)
	}

	expected := `DUPLICATE_SPACE_NAME: board space "Tax" already exists`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "save space list")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "INTERNAL_ERROR: save space list: disk full" {
		t.Errorf("Error() = %v", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeEmptySpaceList, "x"), ErrCodeEmptySpaceList, true},
		{"different code", New(ErrCodeEmptySpaceList, "x"), ErrCodeInvalidSpaceCount, false},
		{"wrapped by fmt", fmt.Errorf("start: %w", New(ErrCodeGameStarted, "x")), ErrCodeGameStarted, true},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(ErrCodeSpaceNotFound, "no space with id %s", "abc"))
	if GetCode(err) != ErrCodeSpaceNotFound {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeSpaceNotFound)
	}
	if UserMessage(err) != "no space with id abc" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}

	plain := errors.New("boom")
	if GetCode(plain) != "" {
		t.Errorf("GetCode(plain) = %v, want empty", GetCode(plain))
	}
	if UserMessage(plain) != "boom" {
		t.Errorf("UserMessage(plain) = %q, want %q", UserMessage(plain), "boom")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(New(ErrCodeInvalidSpaceCount, "x")) {
		t.Error("InvalidSpaceCount should be a validation error")
	}
	if IsValidation(New(ErrCodeGameStarted, "x")) {
		t.Error("GameStarted should not be a validation error")
	}
	if IsValidation(errors.New("x")) {
		t.Error("plain errors are not validation errors")
	}
}
