package datastore

import (
	"fmt"
)

// NetworkError covers requests that never completed successfully
// (transport failures, timeouts, non-2xx statuses, unsuccessful calls).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DataFormatError covers responses which completed but could not be
// read as business name records.
type DataFormatError struct {
	Err error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("data format error: %v", e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
