package ads1x1x

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannel is returned when a channel index is outside [0, Channels()-1].
	ErrInvalidChannel = errors.New("ads1x1x: invalid channel")
	// ErrInvalidGeometry is returned for an unsupported channel count or resolution.
	ErrInvalidGeometry = errors.New("ads1x1x: invalid device geometry")
	// ErrUnknownVariant is returned by LookupVariant for names not in Variants.
	ErrUnknownVariant = errors.New("ads1x1x: unknown variant")
)

// TransportError is any failure reported by the Transport. It is never retried.
type TransportError struct {
	Op   string // "read" or "write"
	Addr uint8
	Reg  byte
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ads1x1x: %s register 0x%02X at slave 0x%02X: %v", e.Op, e.Reg, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
