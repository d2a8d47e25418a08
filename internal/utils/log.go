// Package utils
package utils

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// GetLogger returns the process-wide logger. It writes human readable lines
// to stderr so stdout stays free for indicator output.
func GetLogger() *zerolog.Logger {
	once.Do(func() {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
		logger = zerolog.New(output).With().Timestamp().Str("app", "simple-ta").Logger()
	})
	return &logger
}

// SetLevel sets the global log level by name (trace, debug, info, warn, error).
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
