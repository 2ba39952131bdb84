package hooks

import (
	"runtime/debug"
	"strings"

	log "github.com/sirupsen/logrus"
)

// contextHook adds the file:line of the logging call site to every entry.
type contextHook struct {
	trimPrefix string
}

// NewContextHook creates a hook that reports call sites relative to the
// given path fragment, e.g. "dsclient/".
func NewContextHook(trimPrefix string) contextHook {
	return contextHook{trimPrefix: trimPrefix}
}

func (hook contextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook contextHook) Fire(entry *log.Entry) error {
	entry.Data["file:line"] = callSite(string(debug.Stack()), hook.trimPrefix)
	return nil
}

// callSite walks a stack dump and returns the first frame outside of logrus
// and this hook.
func callSite(stack string, trimPrefix string) string {
	lines := strings.Split(stack, "\n")
	// Frames come in pairs: function line, then a tab-indented file:line.
	for i := 1; i < len(lines); i += 2 {
		fn := lines[i]
		if i+1 >= len(lines) {
			break
		}
		if strings.Contains(fn, "runtime/debug") ||
			strings.Contains(fn, "sirupsen/logrus") ||
			strings.Contains(fn, "log/hooks") {
			continue
		}
		loc := strings.TrimSpace(lines[i+1])
		if idx := strings.LastIndex(loc, " +0x"); idx >= 0 {
			loc = loc[:idx]
		}
		if trimPrefix != "" {
			ctx := strings.Split(loc, trimPrefix)
			loc = ctx[len(ctx)-1]
		}
		return loc
	}
	return "unknown"
}
