package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks connectivity and timeout failures talking to the remote API.
	ErrTransport = errors.New("transport fault")
	// ErrDecode marks payloads that could not be parsed into the expected shape.
	ErrDecode = errors.New("decode fault")
	// ErrStorage marks failures of the local favorites storage.
	ErrStorage = errors.New("storage fault")
)

// StatusError is returned when the remote API answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote status %d", e.Code)
	}
	return fmt.Sprintf("remote status %d: %s", e.Code, e.Message)
}

// StorageFault wraps err as a storage fault for the named operation.
func StorageFault(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
