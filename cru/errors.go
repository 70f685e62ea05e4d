package cru

import "fmt"

// ErrKind classifies clock/reset failures.
type ErrKind int

const (
	ErrUnsupportedClock ErrKind = iota
	ErrInvalidRate
	ErrRateReadFailed
	ErrEnableFailed
	ErrDisableFailed
	ErrPLLConfig
	ErrInvalidDivider
	ErrInvalidClockSource
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnsupportedClock:
		return "unsupported clock"
	case ErrInvalidRate:
		return "invalid rate"
	case ErrRateReadFailed:
		return "rate read failed"
	case ErrEnableFailed:
		return "enable failed"
	case ErrDisableFailed:
		return "disable failed"
	case ErrPLLConfig:
		return "pll config error"
	case ErrInvalidDivider:
		return "invalid divider"
	case ErrInvalidClockSource:
		return "invalid clock source"
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// ClockError is the error type returned by all clock and reset
// operations. Detail carries a rate, divider or source value depending
// on Kind; Reason an optional human-readable explanation.
type ClockError struct {
	Kind   ErrKind
	ID     ClockID
	Detail uint64
	Reason string
}

func (e *ClockError) Error() string {
	switch e.Kind {
	case ErrUnsupportedClock:
		return fmt.Sprintf("clock %d: unsupported clock (value %d)", e.ID, e.Detail)
	case ErrInvalidRate:
		return fmt.Sprintf("clock %d: invalid rate %dHz", e.ID, e.Detail)
	case ErrRateReadFailed:
		return fmt.Sprintf("clock %d: couldn't read rate: %s", e.ID, e.Reason)
	case ErrEnableFailed:
		return fmt.Sprintf("clock %d: couldn't enable: %s", e.ID, e.Reason)
	case ErrDisableFailed:
		return fmt.Sprintf("clock %d: couldn't disable: %s", e.ID, e.Reason)
	case ErrPLLConfig:
		return fmt.Sprintf("clock %d: pll config error: %s", e.ID, e.Reason)
	case ErrInvalidDivider:
		return fmt.Sprintf("clock %d: invalid divider %d", e.ID, e.Detail)
	case ErrInvalidClockSource:
		return fmt.Sprintf("clock %d: invalid clock source %d", e.ID, e.Detail)
	}
	return fmt.Sprintf("clock %d: %s", e.ID, e.Kind)
}

func errUnsupported(id ClockID) error {
	return &ClockError{Kind: ErrUnsupportedClock, ID: id, Detail: uint64(id)}
}

func errInvalidRate(id ClockID, rate uint64) error {
	return &ClockError{Kind: ErrInvalidRate, ID: id, Detail: rate}
}

func errRateRead(id ClockID, reason string) error {
	return &ClockError{Kind: ErrRateReadFailed, ID: id, Reason: reason}
}

func errPLL(id ClockID, format string, args ...interface{}) error {
	return &ClockError{Kind: ErrPLLConfig, ID: id, Reason: fmt.Sprintf(format, args...)}
}

func errDivider(id ClockID, div uint32) error {
	return &ClockError{Kind: ErrInvalidDivider, ID: id, Detail: uint64(div)}
}

func errSource(id ClockID, src uint32) error {
	return &ClockError{Kind: ErrInvalidClockSource, ID: id, Detail: uint64(src)}
}
