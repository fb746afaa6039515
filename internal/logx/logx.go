// Package logx builds the program's logger. The terminal belongs to the
// TUI, so nothing is written unless a log file is configured.
package logx

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to path (appending) or discarding output
// when path is empty. verbose enables debug entries. The returned closer
// must be closed when the program exits.
func New(path string, verbose bool) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

// Discard returns a logger that drops everything, for tests and callers
// that do not care.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
