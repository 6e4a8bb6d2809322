package glerror

import (
	"path/filepath"
	"runtime"
)

type Location struct {
	File string
	Line int
}

// Here returns the location of its caller.
func Here() Location {
	return caller(2)
}

func caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: filepath.Base(file), Line: line}
}
