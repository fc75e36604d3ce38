// Package session holds the per-view state of the reader: the displayed
// passage, the selected word and the current search. Each view is a small
// state machine driven by one goroutine, so none of the types take locks.
//
// Every fetch a view starts is tagged with a Ticket. Results come back
// through Resolve, which drops any result whose ticket is not the latest,
// so the most recent intent always wins.
package session

import (
	"context"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/domain/text"
)

// State is the lifecycle state of a view.
type State int

// State values.
const (
	StateIdle State = iota
	StateLoading
	StateDisplayed
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplayed:
		return "displayed"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Ticket identifies one outgoing fetch.
type Ticket struct {
	Seq     uint64
	Address passage.Address
}

// sequence hands out monotonically increasing ticket numbers.
type sequence struct {
	last uint64
}

func (s *sequence) next() uint64 {
	s.last++
	return s.last
}

func (s *sequence) isLatest(seq uint64) bool {
	return seq != 0 && seq == s.last
}

// LineSource reads an inclusive range of lines.
type LineSource interface {
	Lines(ctx context.Context, start, end int) ([]text.Line, error)
}

// WordSource resolves a word form to lexical entries.
type WordSource interface {
	Lookup(ctx context.Context, word string) ([]lexicon.Entry, error)
}

// SearchSource runs a search in the named mode.
type SearchSource interface {
	Search(ctx context.Context, mode, q string) ([]lexicon.Entry, error)
}

// SpeakerSource lists the speakers of the text.
type SpeakerSource interface {
	Speakers(ctx context.Context) ([]string, error)
}

// Sources bundles the collaborators a reader needs. Both the local
// services and the remote client satisfy every interface.
type Sources struct {
	Lines    LineSource
	Words    WordSource
	Search   SearchSource
	Speakers SpeakerSource
}
