// Package webgl provides glerror.Context over github.com/seqsense/webgl-go.
// It is available only on GOOS=js.
package webgl
