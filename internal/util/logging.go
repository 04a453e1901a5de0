// Package util provides common utilities including logging helpers,
// file system paths, payload checksums and small numeric helpers.
package util

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging routes the global zerolog logger to a file under dir.
// The terminal belongs to the dashboard, so nothing is written to stdout.
// The returned closer should be deferred by the caller.
func SetupLogging(dir, fileName, level string) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Error().Err(err).Msg(context)
	}
}
