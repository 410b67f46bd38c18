package main

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/exitcode"
)

// exitError carries the process exit code for a failure that has already
// been logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// fail logs err and returns it tagged with code.
func fail(log zerolog.Logger, code int, err error, msg string) error {
	log.Error().Err(err).Int("exit_code", code).Msg(msg)
	return &exitError{code: code, err: err}
}

// exitCodeOf maps an Execute error to a process exit code. Errors without
// a code come from cobra itself (unknown flag, wrong arg count).
func exitCodeOf(err error) int {
	if err == nil {
		return exitcode.Success
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitcode.UsageError
}

var errPartial = errors.New("some catalog entries were skipped")
