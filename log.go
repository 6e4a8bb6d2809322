package glerror

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// lineFormatter writes the bare message so that text output keeps
// the "GL error in file ..." line format.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return append([]byte(e.Message), '\n'), nil
}

func newLogger(out io.Writer, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.ErrorLevel)
	switch format {
	case "", FormatText:
		l.SetFormatter(lineFormatter{})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return l, nil
}

func defaultLogger() *logrus.Logger {
	l, _ := newLogger(os.Stderr, FormatText)
	return l
}

func hex(v uint32) string {
	return fmt.Sprintf("0x%04X", v)
}
