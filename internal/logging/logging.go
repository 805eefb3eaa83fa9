// Package logging configures the process-wide xlog formatter and level.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

// Levels lists the accepted level names, most severe first.
var Levels = []string{"critical", "error", "warning", "notice", "info", "debug", "trace"}

// ParseLevel maps a level name to its xlog level. Names are case-insensitive
// and "warn" is accepted for "warning".
func ParseLevel(name string) (xlog.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return xlog.CRITICAL, nil
	case "error":
		return xlog.ERROR, nil
	case "warning", "warn":
		return xlog.WARNING, nil
	case "notice":
		return xlog.NOTICE, nil
	case "info", "":
		return xlog.INFO, nil
	case "debug":
		return xlog.DEBUG, nil
	case "trace":
		return xlog.TRACE, nil
	default:
		return xlog.INFO, errors.Errorf("unknown log level %q", name)
	}
}

// Setup writes log records to w at the given level. A nil w means stderr,
// which keeps stdout free for the stdio transport.
func Setup(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}
	xlog.SetFormatter(xlog.NewStringFormatter(w))
	xlog.SetGlobalLogLevel(lvl)
	return nil
}
