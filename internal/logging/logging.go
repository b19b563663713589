// Package logging builds the service's zerolog loggers.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout at the given level. Unknown
// level names fall back to info rather than failing startup.
func New(service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
