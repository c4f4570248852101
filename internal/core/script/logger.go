package script

import (
	"fmt"

	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
)

// Logger forwards script messages to the engine log. Arguments, when given,
// are applied to the message with fmt.Sprintf.
type Logger struct {
	engine interfaces.LogBoundary
}

func NewLogger(engine interfaces.LogBoundary) Logger {
	return Logger{engine: engine}
}

func (l Logger) Trace(format string, args ...any)    { l.log(log.LevelTrace, format, args) }
func (l Logger) Debug(format string, args ...any)    { l.log(log.LevelDebug, format, args) }
func (l Logger) Info(format string, args ...any)     { l.log(log.LevelInfo, format, args) }
func (l Logger) Warning(format string, args ...any)  { l.log(log.LevelWarn, format, args) }
func (l Logger) Error(format string, args ...any)    { l.log(log.LevelError, format, args) }
func (l Logger) Critical(format string, args ...any) { l.log(log.LevelCritical, format, args) }

func (l Logger) log(level log.Level, format string, args []any) {
	if l.engine == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.engine.Log(level, msg)
}
