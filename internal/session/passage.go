package session

import (
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/domain/text"
)

// Passage is the state of a line view. The address moves to the target of
// a navigation intent as soon as the fetch is issued, so consecutive
// intents build on each other.
type Passage struct {
	nav   passage.Navigator
	seq   sequence
	addr  passage.Address
	state State
	lines []text.Line
	err   error
}

// NewPassage creates an idle Passage.
func NewPassage(nav passage.Navigator) *Passage {
	return &Passage{nav: nav}
}

// Navigator returns the navigator bounding the view.
func (p *Passage) Navigator() passage.Navigator { return p.nav }

// Address returns the current address.
func (p *Passage) Address() passage.Address { return p.addr }

// State returns the lifecycle state.
func (p *Passage) State() State { return p.state }

// Lines returns the displayed lines.
func (p *Passage) Lines() []text.Line { return p.lines }

// Err returns the error of the last failed fetch.
func (p *Passage) Err() error { return p.err }

// CanAdvance reports whether Next would move.
func (p *Passage) CanAdvance() bool {
	return !p.addr.IsZero() && p.nav.CanAdvance(p.addr)
}

// CanRetreat reports whether Prev would move.
func (p *Passage) CanRetreat() bool {
	return !p.addr.IsZero() && p.nav.CanRetreat(p.addr)
}

// Open loads the address resolved from raw start and end parameters.
func (p *Passage) Open(startParam, endParam string) Ticket {
	return p.load(p.nav.Resolve(startParam, endParam))
}

// Next pages forward by one span. At the last line it reports false and
// leaves the state unchanged.
func (p *Passage) Next() (Ticket, bool) {
	if p.addr.IsZero() {
		return Ticket{}, false
	}
	next, b := p.nav.Advance(p.addr)
	if b != passage.BoundaryNone {
		return Ticket{}, false
	}
	return p.load(next), true
}

// Prev pages back by one span. At line 1 it reports false and leaves the
// state unchanged.
func (p *Passage) Prev() (Ticket, bool) {
	if p.addr.IsZero() {
		return Ticket{}, false
	}
	prev, b := p.nav.Retreat(p.addr)
	if b != passage.BoundaryNone {
		return Ticket{}, false
	}
	return p.load(prev), true
}

// JumpToLine shows a single line.
func (p *Passage) JumpToLine(line int) Ticket {
	return p.load(p.nav.JumpToLine(line))
}

// JumpToRange shows the lines from start to end.
func (p *Passage) JumpToRange(start, end int) Ticket {
	return p.load(p.nav.JumpToRange(start, end))
}

// Retry re-issues the fetch for the current address after a failure.
func (p *Passage) Retry() (Ticket, bool) {
	if p.state != StateError {
		return Ticket{}, false
	}
	return p.load(p.addr), true
}

// Resolve applies the result of a fetch. Results for any ticket but the
// latest are discarded and false is returned.
func (p *Passage) Resolve(t Ticket, lines []text.Line, err error) bool {
	if !p.seq.isLatest(t.Seq) || t.Address != p.addr {
		return false
	}
	if err != nil {
		p.state = StateError
		p.err = err
		return true
	}
	p.state = StateDisplayed
	p.lines = lines
	p.err = nil
	return true
}

func (p *Passage) load(a passage.Address) Ticket {
	p.addr = a
	p.state = StateLoading
	p.err = nil
	return Ticket{Seq: p.seq.next(), Address: a}
}
