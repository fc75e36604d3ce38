// Package passage provides line addressing and span-preserving navigation
// over a text with a fixed number of lines.
package passage

import "fmt"

// Address identifies the inclusive, 1-based range of lines currently on
// display. Immutable value object; build it through a Navigator so that it
// is always valid for the navigator's text.
type Address struct {
	start int
	end   int
}

// newAddress assumes start <= end. Callers clamp first.
func newAddress(start, end int) Address {
	return Address{start: start, end: end}
}

// Start returns the first line of the range.
func (a Address) Start() int { return a.start }

// End returns the last line of the range.
func (a Address) End() int { return a.end }

// Span returns the number of lines in the range.
func (a Address) Span() int { return a.end - a.start + 1 }

// IsSingle reports whether the address covers exactly one line.
func (a Address) IsSingle() bool { return a.start == a.end }

// IsZero reports whether the address was never set.
func (a Address) IsZero() bool { return a.start == 0 && a.end == 0 }

// Contains reports whether line falls inside the range.
func (a Address) Contains(line int) bool {
	return line >= a.start && line <= a.end
}

// Lines returns every line number in the range in ascending order.
func (a Address) Lines() []int {
	if a.IsZero() {
		return nil
	}
	lines := make([]int, 0, a.Span())
	for n := a.start; n <= a.end; n++ {
		lines = append(lines, n)
	}
	return lines
}

// String renders the address as "12" or "12-15".
func (a Address) String() string {
	if a.IsSingle() {
		return fmt.Sprintf("%d", a.start)
	}
	return fmt.Sprintf("%d-%d", a.start, a.end)
}

// Boundary reports the outcome of a navigation attempt. A boundary is a
// signal for the caller to disable the control, not an error.
type Boundary int

// Boundary values.
const (
	BoundaryNone Boundary = iota
	BoundaryUpper
	BoundaryLower
)

// String returns a readable representation.
func (b Boundary) String() string {
	switch b {
	case BoundaryUpper:
		return "upper"
	case BoundaryLower:
		return "lower"
	default:
		return "none"
	}
}
