package session

import (
	"errors"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/search"
)

// Search is the state of the search view. Results are kept unfiltered so
// the speaker filter can change without a new request.
type Search struct {
	seq     sequence
	pending search.Query
	query   search.Query
	state   State
	results []lexicon.Entry
	pager   search.Pager
	err     error
}

// NewSearch creates an idle Search paging pageSize results at a time.
func NewSearch(pageSize int) *Search {
	return &Search{pager: search.NewPager(nil, pageSize)}
}

// Query returns the query of the displayed results.
func (s *Search) Query() search.Query { return s.query }

// Pending returns the query of the latest request.
func (s *Search) Pending() search.Query { return s.pending }

// State returns the lifecycle state.
func (s *Search) State() State { return s.state }

// Err returns the error of the last failed search.
func (s *Search) Err() error { return s.err }

// Results returns the results that pass the speaker filter.
func (s *Search) Results() []lexicon.Entry {
	return search.FilterBySpeaker(s.results, s.query.Speaker())
}

// Pager returns the pager over the filtered results.
func (s *Search) Pager() search.Pager { return s.pager }

// Visible returns the results on the current page.
func (s *Search) Visible() []lexicon.Entry { return s.pager.Visible() }

// IsEmpty reports whether a completed search found nothing to show.
func (s *Search) IsEmpty() bool {
	return s.state == StateDisplayed && s.pager.Len() == 0
}

// Submit starts a search for q. A blank query is a no-op: it reports false
// and the prior results stay as they are.
func (s *Search) Submit(q search.Query) (Ticket, bool) {
	if q.IsBlank() {
		return Ticket{}, false
	}
	s.pending = q
	s.state = StateLoading
	s.err = nil
	return Ticket{Seq: s.seq.next()}, true
}

// Retry re-issues the last request after a failure.
func (s *Search) Retry() (Ticket, bool) {
	if s.state != StateError {
		return Ticket{}, false
	}
	return s.Submit(s.pending)
}

// SetSpeaker changes the speaker filter on the displayed results and
// returns to the first page.
func (s *Search) SetSpeaker(speaker string) {
	s.query = s.query.WithSpeaker(speaker)
	s.pending = s.pending.WithSpeaker(speaker)
	s.pager = s.pager.Reset(s.Results())
}

// NextPage moves to the next page of results.
func (s *Search) NextPage() { s.pager = s.pager.Next() }

// PrevPage moves to the previous page of results.
func (s *Search) PrevPage() { s.pager = s.pager.Prev() }

// Resolve applies the result of a search. A not-found error is an empty
// result. Stale results are discarded and false is returned.
func (s *Search) Resolve(t Ticket, entries []lexicon.Entry, err error) bool {
	if !s.seq.isLatest(t.Seq) {
		return false
	}
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		s.state = StateError
		s.err = err
		return true
	}
	if err != nil {
		entries = nil
	}
	s.query = s.pending
	s.results = entries
	s.state = StateDisplayed
	s.pager = s.pager.Reset(s.Results())
	return true
}
