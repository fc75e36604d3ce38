package session

import (
	"errors"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/domain/lexicon"
)

// Lookup holds at most one selected word and its lexical entries.
type Lookup struct {
	seq     sequence
	sel     lexicon.Selection
	state   State
	entries []lexicon.Entry
	err     error
}

// NewLookup creates a Lookup with nothing selected.
func NewLookup() *Lookup {
	return &Lookup{}
}

// Selection returns the selected token, or the zero Selection.
func (l *Lookup) Selection() lexicon.Selection { return l.sel }

// State returns the lifecycle state.
func (l *Lookup) State() State { return l.state }

// Entries returns every entry of the last successful lookup.
func (l *Lookup) Entries() []lexicon.Entry { return l.entries }

// Err returns the error of the last failed lookup.
func (l *Lookup) Err() error { return l.err }

// IsSelected reports whether sel is the current selection.
func (l *Lookup) IsSelected(sel lexicon.Selection) bool {
	return !l.sel.IsZero() && l.sel == sel
}

// Primary returns the entry to show for the selection: the first one on
// the selected line, else the first one.
func (l *Lookup) Primary() (lexicon.Entry, bool) {
	return lexicon.Primary(l.entries, l.sel.LineNum)
}

// Toggle selects sel, or clears the selection when sel is already
// selected. It reports true when a lookup for sel.Word must be issued.
func (l *Lookup) Toggle(sel lexicon.Selection) (Ticket, bool) {
	if l.IsSelected(sel) || sel.IsZero() {
		l.Clear()
		return Ticket{}, false
	}
	l.sel = sel
	l.state = StateLoading
	l.entries = nil
	l.err = nil
	return Ticket{Seq: l.seq.next()}, true
}

// Retry re-issues the lookup for the current selection after a failure.
func (l *Lookup) Retry() (Ticket, bool) {
	if l.state != StateError {
		return Ticket{}, false
	}
	l.state = StateLoading
	l.err = nil
	return Ticket{Seq: l.seq.next()}, true
}

// Clear drops the selection. A lookup still in flight is discarded when it
// arrives.
func (l *Lookup) Clear() {
	l.seq.next()
	l.sel = lexicon.Selection{}
	l.state = StateIdle
	l.entries = nil
	l.err = nil
}

// Resolve applies the result of a lookup. A not-found error is an empty
// result, not a failure. Stale results are discarded and false is
// returned.
func (l *Lookup) Resolve(t Ticket, entries []lexicon.Entry, err error) bool {
	if !l.seq.isLatest(t.Seq) {
		return false
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		l.state = StateDisplayed
		l.entries = []lexicon.Entry{}
	case err != nil:
		l.state = StateError
		l.err = err
	default:
		l.state = StateDisplayed
		l.entries = entries
	}
	return true
}
