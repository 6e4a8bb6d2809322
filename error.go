package glerror

import (
	"errors"
	"fmt"
)

var (
	// ErrOperation is matched by errors reported by glGetError.
	ErrOperation = errors.New("GL operation failed")
	// ErrIncomplete is matched by errors caused by an incomplete framebuffer.
	ErrIncomplete = errors.New("framebuffer incomplete")
)

type Error struct {
	Code ErrorCode
}

func (e *Error) Error() string {
	if _, ok := errorDescriptions[e.Code]; !ok {
		return fmt.Sprintf("%s 0x%04X", unknownError, uint32(e.Code))
	}
	return Describe(e.Code)
}

func (e *Error) Is(target error) bool {
	return target == ErrOperation
}

type FramebufferError struct {
	Target FramebufferTarget
	Status FramebufferStatus
}

func (e *FramebufferError) Error() string {
	if _, ok := framebufferStatusNames[e.Status]; !ok {
		return fmt.Sprintf("%s 0x%04X", unknownFramebufferError, uint32(e.Status))
	}
	return DescribeFramebufferStatus(e.Status)
}

func (e *FramebufferError) Is(target error) bool {
	return target == ErrIncomplete
}
