package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/iov-one/quorum/errors"
	"github.com/jrick/logrotate/rotator"
)

const (
	logFilename = "quorumd.log"
	// logRollSize is the size in KiB after which a log file is rotated.
	logRollSize = 10 * 1024
)

// logWriter outputs to both standard output and a log rotator.
type logWriter struct {
	r *rotator.Rotator
}

func (l logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return l.r.Write(p)
}

// newLogOutput returns the writer all logs are written to. Without a log
// directory this is standard output only. The returned close function must
// be called before the process exits.
func newLogOutput(logDir string, maxRolls int) (io.Writer, func() error, error) {
	if logDir == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, nil, errors.Wrap(err, "cannot create log directory")
	}
	r, err := rotator.New(filepath.Join(logDir, logFilename), logRollSize, false, maxRolls)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create file rotator")
	}
	return logWriter{r: r}, r.Close, nil
}
