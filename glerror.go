// Package glerror translates OpenGL and WebGL error codes and framebuffer
// completeness status into readable messages and reports them with source
// location.
package glerror

type ErrorCode uint32
type FramebufferStatus uint32
type FramebufferTarget uint32

const (
	NO_ERROR                      ErrorCode = 0x0000
	INVALID_ENUM                  ErrorCode = 0x0500
	INVALID_VALUE                 ErrorCode = 0x0501
	INVALID_OPERATION             ErrorCode = 0x0502
	STACK_OVERFLOW                ErrorCode = 0x0503
	STACK_UNDERFLOW               ErrorCode = 0x0504
	OUT_OF_MEMORY                 ErrorCode = 0x0505
	INVALID_FRAMEBUFFER_OPERATION ErrorCode = 0x0506
	CONTEXT_LOST                  ErrorCode = 0x0507
	TABLE_TOO_LARGE               ErrorCode = 0x8031
	CONTEXT_LOST_WEBGL            ErrorCode = 0x9242
)

const (
	FRAMEBUFFER_COMPLETE                      FramebufferStatus = 0x8CD5
	FRAMEBUFFER_UNDEFINED                     FramebufferStatus = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         FramebufferStatus = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT FramebufferStatus = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         FramebufferStatus = 0x8CD9
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        FramebufferStatus = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        FramebufferStatus = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   FramebufferStatus = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        FramebufferStatus = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      FramebufferStatus = 0x8DA8
)

const (
	FRAMEBUFFER      FramebufferTarget = 0x8D40
	READ_FRAMEBUFFER FramebufferTarget = 0x8CA8
	DRAW_FRAMEBUFFER FramebufferTarget = 0x8CA9
)

const (
	unknownError            = "Unknown error"
	unknownFramebufferError = "unknown error"
)

var errorDescriptions = map[ErrorCode]string{
	NO_ERROR:                      "No error",
	INVALID_ENUM:                  "Invalid enum",
	INVALID_VALUE:                 "Invalid value",
	INVALID_OPERATION:             "Invalid operation",
	STACK_OVERFLOW:                "Stack overflow",
	STACK_UNDERFLOW:               "Stack underflow",
	OUT_OF_MEMORY:                 "Out of memory",
	INVALID_FRAMEBUFFER_OPERATION: "Invalid framebuffer operation",
	CONTEXT_LOST:                  "Context lost",
	TABLE_TOO_LARGE:               "Table too large",
	CONTEXT_LOST_WEBGL:            "Context lost WebGL",
}

var framebufferStatusNames = map[FramebufferStatus]string{
	FRAMEBUFFER_COMPLETE:                      "GL_FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_UNDEFINED:                     "GL_FRAMEBUFFER_UNDEFINED",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS:         "GL_FRAMEBUFFER_INCOMPLETE_DIMENSIONS",
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:        "GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER:        "GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	FRAMEBUFFER_UNSUPPORTED:                   "GL_FRAMEBUFFER_UNSUPPORTED",
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        "GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:      "GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS",
}

// Describe returns a readable description of the error code.
// Unrecognized codes are described as "Unknown error".
func Describe(code ErrorCode) string {
	if s, ok := errorDescriptions[code]; ok {
		return s
	}
	return unknownError
}

// DescribeFramebufferStatus returns the GL name of the status,
// or "unknown error" if the status is not recognized.
func DescribeFramebufferStatus(status FramebufferStatus) string {
	if s, ok := framebufferStatusNames[status]; ok {
		return s
	}
	return unknownFramebufferError
}

func (c ErrorCode) String() string {
	return Describe(c)
}

func (s FramebufferStatus) String() string {
	return DescribeFramebufferStatus(s)
}

// ErrorCodes returns all recognized error codes in ascending order.
func ErrorCodes() []ErrorCode {
	return []ErrorCode{
		NO_ERROR,
		INVALID_ENUM,
		INVALID_VALUE,
		INVALID_OPERATION,
		STACK_OVERFLOW,
		STACK_UNDERFLOW,
		OUT_OF_MEMORY,
		INVALID_FRAMEBUFFER_OPERATION,
		CONTEXT_LOST,
		TABLE_TOO_LARGE,
		CONTEXT_LOST_WEBGL,
	}
}

// FramebufferStatuses returns all recognized framebuffer status in ascending order.
func FramebufferStatuses() []FramebufferStatus {
	return []FramebufferStatus{
		FRAMEBUFFER_UNDEFINED,
		FRAMEBUFFER_COMPLETE,
		FRAMEBUFFER_INCOMPLETE_ATTACHMENT,
		FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT,
		FRAMEBUFFER_INCOMPLETE_DIMENSIONS,
		FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER,
		FRAMEBUFFER_INCOMPLETE_READ_BUFFER,
		FRAMEBUFFER_UNSUPPORTED,
		FRAMEBUFFER_INCOMPLETE_MULTISAMPLE,
		FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS,
	}
}
