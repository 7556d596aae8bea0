package logging

import (
	"fmt"
)

// Formatter composes a log line from a message and its context
type Formatter interface {
	Format(ctx *MessageContext, message string, args ...interface{}) string
}

type SimpleFormatter struct {
	FormatString string
}

func (f *SimpleFormatter) Format(ctx *MessageContext, message string, args ...interface{}) string {
	return fmt.Sprintf(f.FormatString, ctx.Level, ctx.TimeStamp.Format("15:04:05.000"), ctx.File, ctx.Line, fmt.Sprintf(message, args...))
}

// DefaultFormatter renders "[LEVEL hh:mm:ss.mmm file:line] message"
var DefaultFormatter Formatter = &SimpleFormatter{
	FormatString: "[%[1]s %[2]s %[3]s:%[4]d] %[5]s",
}
