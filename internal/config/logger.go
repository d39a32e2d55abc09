package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. The terminal is owned by the
// renderer while playing, so logs go to file or are dropped when file is
// empty and quiet is set.
func NewLogger(level, file string, quiet bool) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if nil != err {
		return nil, nil, fmt.Errorf("config: log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if nil != err {
			return nil, nil, fmt.Errorf("config: open log file: %w", err)
		}
		logger.SetOutput(f)
		return logger, f, nil
	case quiet:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
