package search

import "github.com/helixml/antigone/domain/lexicon"

// DefaultPageSize is the number of results shown per page.
const DefaultPageSize = 5

// Pager pages a result set in fixed-size pages. Pages are 0-based.
// Replacing the result set always returns to page 0.
type Pager struct {
	entries []lexicon.Entry
	size    int
	page    int
}

// NewPager creates a Pager over entries. A size below 1 uses DefaultPageSize.
func NewPager(entries []lexicon.Entry, size int) Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	p := Pager{size: size}
	return p.Reset(entries)
}

// Reset replaces the result set and returns to page 0.
func (p Pager) Reset(entries []lexicon.Entry) Pager {
	p.entries = make([]lexicon.Entry, len(entries))
	copy(p.entries, entries)
	p.page = 0
	return p
}

// Len returns the total number of results.
func (p Pager) Len() int { return len(p.entries) }

// Size returns the page size.
func (p Pager) Size() int { return p.size }

// Current returns the 0-based current page.
func (p Pager) Current() int { return p.page }

// TotalPages returns the number of pages; an empty set has zero pages.
func (p Pager) TotalPages() int {
	return (len(p.entries) + p.size - 1) / p.size
}

// Page returns the results on page i, or nil when i is out of range.
func (p Pager) Page(i int) []lexicon.Entry {
	if i < 0 || i >= p.TotalPages() {
		return nil
	}
	start := i * p.size
	end := min(start+p.size, len(p.entries))
	out := make([]lexicon.Entry, end-start)
	copy(out, p.entries[start:end])
	return out
}

// Visible returns the results on the current page.
func (p Pager) Visible() []lexicon.Entry { return p.Page(p.page) }

// HasNext reports whether a later page exists.
func (p Pager) HasNext() bool { return p.page+1 < p.TotalPages() }

// HasPrev reports whether an earlier page exists.
func (p Pager) HasPrev() bool { return p.page > 0 }

// Next moves to the next page, staying put on the last one.
func (p Pager) Next() Pager {
	if p.HasNext() {
		p.page++
	}
	return p
}

// Prev moves to the previous page, staying put on the first one.
func (p Pager) Prev() Pager {
	if p.HasPrev() {
		p.page--
	}
	return p
}
