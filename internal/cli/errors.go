package cli

import "errors"

// ErrUsage marks errors caused by invalid command-line usage, so callers can
// distinguish them from generation failures with errors.Is.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
