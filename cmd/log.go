package cmd

import (
	"os"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

// newLogger returns the editor's logger. The terminal is in use, so records
// only go to path; with no path they are dropped.
func newLogger(path string) (log15.Logger, func(), error) {
	logger := log15.New("app", "kai")

	if path == "" {
		logger.SetHandler(log15.DiscardHandler())
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open debug log")
	}

	logger.SetHandler(log15.StreamHandler(f, log15.LogfmtFormat()))
	return logger, func() { f.Close() }, nil
}
