package glerror

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	t.Run("Operation", func(t *testing.T) {
		var err error = &Error{Code: INVALID_VALUE}
		if !errors.Is(err, ErrOperation) {
			t.Error("Error must match ErrOperation")
		}
		if errors.Is(err, ErrIncomplete) {
			t.Error("Error must not match ErrIncomplete")
		}
		if s := err.Error(); s != "Invalid value" {
			t.Errorf("expected: %q, got: %q", "Invalid value", s)
		}
	})
	t.Run("OperationUnknown", func(t *testing.T) {
		err := &Error{Code: 0x1234}
		if s := err.Error(); s != "Unknown error 0x1234" {
			t.Errorf("expected: %q, got: %q", "Unknown error 0x1234", s)
		}
	})
	t.Run("Framebuffer", func(t *testing.T) {
		var err error = &FramebufferError{Target: FRAMEBUFFER, Status: FRAMEBUFFER_UNSUPPORTED}
		if !errors.Is(err, ErrIncomplete) {
			t.Error("FramebufferError must match ErrIncomplete")
		}
		if errors.Is(err, ErrOperation) {
			t.Error("FramebufferError must not match ErrOperation")
		}
		if s := err.Error(); s != "GL_FRAMEBUFFER_UNSUPPORTED" {
			t.Errorf("expected: %q, got: %q", "GL_FRAMEBUFFER_UNSUPPORTED", s)
		}
	})
	t.Run("FramebufferUnknown", func(t *testing.T) {
		err := &FramebufferError{Status: 0x10}
		if s := err.Error(); s != "unknown error 0x0010" {
			t.Errorf("expected: %q, got: %q", "unknown error 0x0010", s)
		}
	})
}
