package glerror

// Context is the graphics context queried by Reporter.
// Implementations must be called from the goroutine owning the context.
type Context interface {
	GetError() ErrorCode
	CheckFramebufferStatus(target FramebufferTarget) FramebufferStatus
}

// ReplayContext is an in-memory Context.
// GetError pops Errors in order and returns NO_ERROR once they are consumed.
type ReplayContext struct {
	Errors []ErrorCode
	Status FramebufferStatus
}

func NewReplayContext(status FramebufferStatus, errs ...ErrorCode) *ReplayContext {
	return &ReplayContext{
		Errors: errs,
		Status: status,
	}
}

func (c *ReplayContext) GetError() ErrorCode {
	if len(c.Errors) == 0 {
		return NO_ERROR
	}
	e := c.Errors[0]
	c.Errors = c.Errors[1:]
	return e
}

func (c *ReplayContext) CheckFramebufferStatus(FramebufferTarget) FramebufferStatus {
	return c.Status
}
