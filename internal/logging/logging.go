// Package logging builds the zap logger. The screen owns the terminal, so logs
// only go to a file and are off unless one is configured.
package logging

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// New returns a JSON logger appending to path, or a no-op logger for "".
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return log.Named("passgen"), nil
}
