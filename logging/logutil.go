package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// InitLogger configures the global logger. Cloud Logging only reads the time
// field as an RFC3339 string.
func InitLogger(level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = New(os.Stderr, level, format)
}

// New builds a logger without touching package-wide zerolog settings. JSON
// output carries a severity field Cloud Logging maps onto log levels.
func New(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == FormatConsole {
		return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(lvl).Hook(severityHook{}).With().Timestamp().Logger()
}

type severityHook struct{}

func (severityHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		e.Str("severity", severity(level))
	}
}

func severity(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return "DEBUG"
	case zerolog.InfoLevel:
		return "INFO"
	case zerolog.WarnLevel:
		return "WARNING"
	case zerolog.ErrorLevel:
		return "ERROR"
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return "CRITICAL"
	}
	return "DEFAULT"
}

func GetLogger() *zerolog.Logger {
	return &log.Logger
}
