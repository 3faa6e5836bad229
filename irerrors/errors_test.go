package irerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSplitError(t *testing.T) {
	t.Run("Error message for expected integer", func(t *testing.T) {
		err := &SplitError{Reason: ReasonExpectedInteger, Offset: 5}
		if err.Error() != "decimal integer expected at char 5" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for out of range integer", func(t *testing.T) {
		err := &SplitError{Reason: ReasonIntegerOutOfRange, Offset: 12}
		if err.Error() != "out of range integer at char 12" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for expected separator", func(t *testing.T) {
		err := &SplitError{Reason: ReasonExpectedSeparator, Offset: 8}
		if err.Error() != "separator expected at char 8" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &SplitError{Reason: ReasonExpectedInteger, Offset: 1}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrSplit", func(t *testing.T) {
		err := &SplitError{Reason: ReasonExpectedInteger, Offset: 1}
		if !errors.Is(err, ErrSplit) {
			t.Error("SplitError should match ErrSplit")
		}
	})

	t.Run("Is matches reason sentinel", func(t *testing.T) {
		tests := []struct {
			reason   Reason
			sentinel error
		}{
			{ReasonExpectedInteger, ErrExpectedInteger},
			{ReasonIntegerOutOfRange, ErrIntegerOutOfRange},
			{ReasonExpectedSeparator, ErrExpectedSeparator},
		}
		for _, tt := range tests {
			err := &SplitError{Reason: tt.reason, Offset: 1}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("SplitError with reason %q should match its sentinel", tt.reason)
			}
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &SplitError{Reason: ReasonExpectedInteger, Offset: 1}
		if errors.Is(err, ErrIntegerOutOfRange) {
			t.Error("SplitError should not match ErrIntegerOutOfRange")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("SplitError should not match ErrConfig")
		}
	})

	t.Run("As extracts SplitError", func(t *testing.T) {
		var target *SplitError
		err := fmt.Errorf("wrapped: %w", &SplitError{Reason: ReasonExpectedSeparator, Offset: 3})
		if !errors.As(err, &target) {
			t.Fatal("As should extract SplitError")
		}
		if target.Offset != 3 {
			t.Errorf("expected offset 3, got %d", target.Offset)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{Field: "sep", Value: byte('5'), Message: `'sep' cannot be a digit, "+" or "-"`}
		want := `configuration error in sep: 'sep' cannot be a digit, "+" or "-"`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := NewSeparatorError('+')
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("NewSeparatorError records the offending byte", func(t *testing.T) {
		err := NewSeparatorError('-')
		if err.Field != "sep" {
			t.Errorf("expected field 'sep', got %q", err.Field)
		}
		if err.Value != byte('-') {
			t.Errorf("expected value '-', got %v", err.Value)
		}
	})
}

func TestBatchError(t *testing.T) {
	t.Run("Error message embeds element index and cause", func(t *testing.T) {
		cause := &SplitError{Reason: ReasonExpectedInteger, Offset: 5}
		err := &BatchError{Index: 2, Cause: cause}
		if err.Error() != "in list element 2: decimal integer expected at char 5" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &BatchError{Index: 7}
		if err.Error() != "in list element 7" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &BatchError{Index: 1, Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrBatch", func(t *testing.T) {
		err := &BatchError{Index: 1}
		if !errors.Is(err, ErrBatch) {
			t.Error("BatchError should match ErrBatch")
		}
	})

	t.Run("Is reaches wrapped reason through the chain", func(t *testing.T) {
		cause := &SplitError{Reason: ReasonIntegerOutOfRange, Offset: 12}
		err := &BatchError{Index: 3, Cause: cause}
		if !errors.Is(err, ErrIntegerOutOfRange) {
			t.Error("BatchError should match the wrapped reason sentinel")
		}
		if !errors.Is(err, ErrSplit) {
			t.Error("BatchError should match ErrSplit through the chain")
		}
	})

	t.Run("As extracts wrapped SplitError", func(t *testing.T) {
		cause := &SplitError{Reason: ReasonExpectedSeparator, Offset: 8}
		err := &BatchError{Index: 4, Cause: cause}
		var target *SplitError
		if !errors.As(err, &target) {
			t.Fatal("As should extract the wrapped SplitError")
		}
		if target.Offset != 8 {
			t.Errorf("expected offset 8, got %d", target.Offset)
		}
	})
}
