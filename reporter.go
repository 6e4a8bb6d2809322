package glerror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const defaultMaxDrain = 16

// Reporter queries a Context and reports errors found.
// Each call reflects only the current state of the context.
type Reporter struct {
	ctx Context

	Logger *logrus.Logger
	Target FramebufferTarget

	// MaxDrain limits the number of error flags read by Errors.
	// A lost context may keep returning errors.
	MaxDrain int
}

func New(ctx Context) *Reporter {
	return &Reporter{
		ctx:      ctx,
		Logger:   defaultLogger(),
		Target:   FRAMEBUFFER,
		MaxDrain: defaultMaxDrain,
	}
}

// CheckError logs the current error, if any, and returns false on error.
func (r *Reporter) CheckError(loc Location) bool {
	code := r.ctx.GetError()
	if code == NO_ERROR {
		return true
	}
	r.Logger.WithFields(logrus.Fields{
		"file": loc.File,
		"line": loc.Line,
		"code": hex(uint32(code)),
	}).Error(fmt.Sprintf("GL error in file '%s' @ line %d: %s", loc.File, loc.Line, Describe(code)))
	return false
}

// GetError returns the description of the current error.
// ok is false if no error is recorded.
func (r *Reporter) GetError() (msg string, ok bool) {
	code := r.ctx.GetError()
	if code == NO_ERROR {
		return "", false
	}
	return Describe(code), true
}

// CheckFramebufferError logs the status of the target framebuffer
// unless it is complete, and returns true only if it is complete.
func (r *Reporter) CheckFramebufferError(loc Location) bool {
	msg, ok := r.GetFramebufferStatus()
	if ok {
		return true
	}
	r.Logger.WithFields(logrus.Fields{
		"file":   loc.File,
		"line":   loc.Line,
		"target": hex(uint32(r.Target)),
	}).Error(fmt.Sprintf("framebuffer error in file '%s' @ line %d: %s", loc.File, loc.Line, msg))
	return false
}

// GetFramebufferStatus returns true if the target framebuffer is complete.
// Otherwise, the status name is returned as msg.
func (r *Reporter) GetFramebufferStatus() (msg string, ok bool) {
	status := r.ctx.CheckFramebufferStatus(r.Target)
	if status == FRAMEBUFFER_COMPLETE {
		return "", true
	}
	return DescribeFramebufferStatus(status), false
}

// Errors reads error flags until NO_ERROR is returned.
func (r *Reporter) Errors() []ErrorCode {
	n := r.MaxDrain
	if n <= 0 {
		n = defaultMaxDrain
	}
	var codes []ErrorCode
	for i := 0; i < n; i++ {
		code := r.ctx.GetError()
		if code == NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

// Err returns pending errors as error.
// Returned error matches ErrOperation.
func (r *Reporter) Err() error {
	codes := r.Errors()
	switch len(codes) {
	case 0:
		return nil
	case 1:
		return &Error{Code: codes[0]}
	}
	errs := make([]error, 0, len(codes))
	for _, c := range codes {
		errs = append(errs, &Error{Code: c})
	}
	return errors.Join(errs...)
}

// FramebufferErr returns nil if the target framebuffer is complete.
func (r *Reporter) FramebufferErr() error {
	status := r.ctx.CheckFramebufferStatus(r.Target)
	if status == FRAMEBUFFER_COMPLETE {
		return nil
	}
	return &FramebufferError{Target: r.Target, Status: status}
}
