package passage

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Default corpus dimensions.
const (
	DefaultTotalLines = 1353
	LinesPerPage      = 11
)

// Navigator computes and transitions line addresses within [1, totalLines].
// Out-of-range input is clamped, never rejected, so there is always
// something to render.
type Navigator struct {
	totalLines int
}

// NewNavigator creates a Navigator for a text of totalLines lines.
// Values below 1 fall back to DefaultTotalLines.
func NewNavigator(totalLines int) Navigator {
	if totalLines < 1 {
		totalLines = DefaultTotalLines
	}
	return Navigator{totalLines: totalLines}
}

// TotalLines returns the number of lines in the text.
func (n Navigator) TotalLines() int { return n.totalLines }

// Resolve builds the initial address from raw, possibly empty parameters
// such as path segments or form fields. A missing or non-numeric start
// becomes 1; a missing, non-numeric or inverted end collapses to start.
// Numbers too large for an int saturate before clamping, and decimal
// notation such as "7.0" is truncated toward zero.
func (n Navigator) Resolve(startParam, endParam string) Address {
	start, ok := parseLine(startParam)
	if !ok {
		start = 1
	}
	end, ok := parseLine(endParam)
	if !ok || end < start {
		end = start
	}
	return newAddress(n.clamp(start), n.clamp(end))
}

// Advance moves forward by one span. When the moved range would pass the
// last line the address is returned unchanged with BoundaryUpper.
func (n Navigator) Advance(a Address) (Address, Boundary) {
	span := a.Span()
	next := newAddress(a.start+span, a.end+span)
	if next.end > n.totalLines {
		return a, BoundaryUpper
	}
	return next, BoundaryNone
}

// Retreat moves back by one span. When the moved range would start before
// line 1 the address is returned unchanged with BoundaryLower.
func (n Navigator) Retreat(a Address) (Address, Boundary) {
	span := a.Span()
	prev := newAddress(a.start-span, a.end-span)
	if prev.start < 1 {
		return a, BoundaryLower
	}
	return prev, BoundaryNone
}

// CanAdvance reports whether Advance would move.
func (n Navigator) CanAdvance(a Address) bool {
	_, b := n.Advance(a)
	return b == BoundaryNone
}

// CanRetreat reports whether Retreat would move.
func (n Navigator) CanRetreat(a Address) bool {
	_, b := n.Retreat(a)
	return b == BoundaryNone
}

// JumpToLine returns a single-line address at the clamped line.
func (n Navigator) JumpToLine(line int) Address {
	line = n.clamp(line)
	return newAddress(line, line)
}

// JumpToRange clamps both bounds independently, then raises end to start
// if the pair was inverted.
func (n Navigator) JumpToRange(start, end int) Address {
	if start == end {
		return n.JumpToLine(start)
	}
	start = n.clamp(start)
	end = max(n.clamp(end), start)
	return newAddress(start, end)
}

// PageCount returns the number of fixed-size reading pages.
func (n Navigator) PageCount() int {
	return (n.totalLines + LinesPerPage - 1) / LinesPerPage
}

// ValidPage reports whether page is within [1, PageCount].
func (n Navigator) ValidPage(page int) bool {
	return page >= 1 && page <= n.PageCount()
}

// PageAddress maps a 1-based reading page to its line range. The page is
// clamped to [1, PageCount] and the last page may be short.
func (n Navigator) PageAddress(page int) Address {
	page = min(max(page, 1), n.PageCount())
	start := (page-1)*LinesPerPage + 1
	end := min(page*LinesPerPage, n.totalLines)
	return newAddress(start, end)
}

// PageOf returns the reading page containing line.
func (n Navigator) PageOf(line int) int {
	return (n.clamp(line)-1)/LinesPerPage + 1
}

// ParseAddress resolves the "start" or "start-end" notation used on the
// command line and by tool callers.
func (n Navigator) ParseAddress(s string) Address {
	startParam, endParam, _ := strings.Cut(strings.TrimSpace(s), "-")
	return n.Resolve(startParam, endParam)
}

func (n Navigator) clamp(line int) int {
	return min(max(line, 1), n.totalLines)
}

func parseLine(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err == nil {
		return v, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return saturate(strings.HasPrefix(s, "-")), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	}
	return int(math.Trunc(f)), true
}

func saturate(negative bool) int {
	if negative {
		return math.MinInt
	}
	return math.MaxInt
}
