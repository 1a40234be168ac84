package collection

import (
	"strings"

	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

// Mode selects the end of the sequence that reads and removals use.
type Mode int

const (
	// FIFO reads and removes the oldest item (index 0).
	FIFO Mode = iota
	// FILO reads and removes the newest item (last index).
	FILO
)

func (m Mode) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case FILO:
		return "filo"
	default:
		return "unknown"
	}
}

// ParseMode accepts "fifo" or "filo", case-insensitive. "queue" and "stack"
// are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "queue":
		return FIFO, nil
	case "filo", "lifo", "stack":
		return FILO, nil
	default:
		return FIFO, srvErrors.NewInvalidModeError(s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	if m != FIFO && m != FILO {
		return nil, srvErrors.NewInvalidModeError(m.String())
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Span returns the half-open index range [start, end) of up to n items at the
// access end of a sequence of the given length. The range is empty when
// length is zero or n < 1.
//
// Every extraction in this module goes through Span so single-item and batch
// access always agree on where the head is.
func (m Mode) Span(length, n int) (start, end int) {
	if length <= 0 || n < 1 {
		return 0, 0
	}
	n = min(n, length)
	if m == FILO {
		return length - n, length
	}
	return 0, n
}

// Head returns the access index for a sequence of the given length, or -1 when
// the sequence is empty.
func (m Mode) Head(length int) int {
	start, end := m.Span(length, 1)
	if start == end {
		return -1
	}
	return start
}
