package cli

import (
	"fmt"
)

// UsageError marks a bad flag value. Nothing is fetched when one occurs.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
