package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logLevelEnvVar overrides the default log level when set.
const logLevelEnvVar = "CARBONCOUNT_LOG_LEVEL"

// defaultLogLevel returns the log level from the environment, or "warn".
// The CLI is a display surface; logs stay quiet unless asked for.
func defaultLogLevel() string {
	if lvl := os.Getenv(logLevelEnvVar); lvl != "" {
		return lvl
	}
	return zerolog.WarnLevel.String()
}

// newLogger builds a console logger writing to stderr at the given level.
// Unparseable levels fall back to warn.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
