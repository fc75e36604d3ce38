package search

import "github.com/helixml/antigone/domain/lexicon"

// FilterBySpeaker keeps the entries whose line is spoken by speaker,
// compared case-insensitively. A blank speaker keeps everything.
func FilterBySpeaker(entries []lexicon.Entry, speaker string) []lexicon.Entry {
	if speaker == "" {
		out := make([]lexicon.Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]lexicon.Entry, 0, len(entries))
	for _, e := range entries {
		if e.SpokenBy(speaker) {
			out = append(out, e)
		}
	}
	return out
}
