// Package status defines the status taxonomy shared across the provider
// boundary. Every failure a provider or the host surfaces maps to one of
// these codes; the normal path never faults.
package status

import "errors"

// Code enumerates the boundary statuses.
type Code int

const (
	OK Code = iota
	BadArgument
	NoMemory
	Unsupported
)

// String returns the wire-facing name of the code.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case BadArgument:
		return "BAD_ARGUMENT"
	case NoMemory:
		return "NO_MEMORY"
	case Unsupported:
		return "UNSUPPORTED"
	}
	return "UNKNOWN"
}

// Sentinel errors for the failing codes. Failure paths wrap these with
// fmt.Errorf and %w so callers can classify with errors.Is or CodeOf.
var (
	ErrBadArgument = errors.New("bad argument")
	ErrNoMemory    = errors.New("no memory")
	ErrUnsupported = errors.New("unsupported")
)

// CodeOf maps err to its boundary code. A nil error is OK. The second
// return is false when err carries no code from this taxonomy.
func CodeOf(err error) (Code, bool) {
	switch {
	case err == nil:
		return OK, true
	case errors.Is(err, ErrBadArgument):
		return BadArgument, true
	case errors.Is(err, ErrNoMemory):
		return NoMemory, true
	case errors.Is(err, ErrUnsupported):
		return Unsupported, true
	}
	return OK, false
}
