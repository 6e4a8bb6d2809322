package webgl

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glerror"
)

type Context struct {
	gl js.Value
}

func New(gl *webgl.WebGL) *Context {
	return &Context{gl: gl.JS()}
}

func (c *Context) GetError() glerror.ErrorCode {
	return glerror.ErrorCode(c.gl.Call("getError").Int())
}

func (c *Context) CheckFramebufferStatus(target glerror.FramebufferTarget) glerror.FramebufferStatus {
	return glerror.FramebufferStatus(c.gl.Call("checkFramebufferStatus", int(target)).Int())
}

// NewReporter returns glerror.Reporter bound to the WebGL context.
func NewReporter(gl *webgl.WebGL) *glerror.Reporter {
	return glerror.New(New(gl))
}
