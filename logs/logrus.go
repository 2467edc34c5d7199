package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to
// create a logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where the entries are written. Defaults to os.Stderr
	Output io.Writer

	// Formatter used for the entries. Defaults to a text formatter
	Formatter logrus.Formatter
}

// LogrusLogger is an implementation of Logger that uses logrus
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger instance backed by logrus
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Formatter != nil {
		logger.SetFormatter(props.Formatter)
	}

	return &LogrusLogger{logger: logger}
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.DebugLevel, msg, loggable)
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.InfoLevel, msg, loggable)
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.WarnLevel, msg, loggable)
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.ErrorLevel, msg, loggable)
}

func (l *LogrusLogger) log(ctx context.Context, level logrus.Level, msg string, loggable Loggable) {
	if !l.logger.IsLevelEnabled(level) {
		return
	}

	fields := MapFields{}
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add("trace_id", traceID)
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	l.logger.WithFields(logrus.Fields(fields)).Log(level, msg)
}
