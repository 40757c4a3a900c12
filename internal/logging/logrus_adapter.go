package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures a LogrusAdapter.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Format is json or text. Anything else means text.
	Format string
	// Output receives log lines. Nil means stderr, which keeps command
	// output on stdout clean for json and yaml.
	Output io.Writer
}

// LogrusAdapter implements Logger on top of a logrus entry.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// New builds a LogrusAdapter from opts.
func New(opts Options) *LogrusAdapter {
	logger := logrus.New()
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", opts.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.EqualFold(opts.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return wrap(logger)
}

// NewLogrusAdapter returns a stderr Logger with the given level and format.
func NewLogrusAdapter(level, format string) Logger {
	return New(Options{Level: level, Format: format})
}

// NewLogrusAdapterFromLogger wraps an existing logrus.Logger. A nil logger
// gets a fresh default one.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return wrap(logger)
}

func wrap(logger *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

func (l *LogrusAdapter) derive(entry *logrus.Entry) Logger {
	return &LogrusAdapter{logger: l.logger, entry: entry}
}

func (l *LogrusAdapter) log(level logrus.Level, msg string, fields []Field) {
	if !l.logger.IsLevelEnabled(level) {
		return
	}
	l.entry.WithFields(convertFields(fields)).Log(level, msg)
}

// SetOutput redirects log output.
func (l *LogrusAdapter) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.log(logrus.DebugLevel, msg, fields) }
func (l *LogrusAdapter) Info(msg string, fields ...Field)  { l.log(logrus.InfoLevel, msg, fields) }
func (l *LogrusAdapter) Warn(msg string, fields ...Field)  { l.log(logrus.WarnLevel, msg, fields) }
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.log(logrus.ErrorLevel, msg, fields) }

func (l *LogrusAdapter) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.derive(l.entry.WithField(key, value))
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.derive(l.entry.WithFields(convertFields(fields)))
}

func convertFields(fields []Field) logrus.Fields {
	logrusFields := make(logrus.Fields, len(fields))
	for _, field := range fields {
		logrusFields[field.Key] = field.Value
	}
	return logrusFields
}
