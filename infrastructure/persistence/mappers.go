package persistence

import (
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/text"
)

// LineMapper maps between domain Line and persistence LineModel.
type LineMapper struct{}

// ToDomain converts a LineModel to a domain Line.
func (m LineMapper) ToDomain(e LineModel) text.Line {
	return text.ReconstructLine(e.LineNumber, e.LineText, e.Speaker)
}

// ToModel converts a domain Line to a LineModel.
func (m LineMapper) ToModel(l text.Line) LineModel {
	return LineModel{
		LineNumber: l.Number(),
		LineText:   l.TextValue(),
		Speaker:    l.SpeakerValue(),
	}
}

// DefinitionMapper maps between domain Definition and persistence DefinitionModel.
type DefinitionMapper struct{}

// ToDomain converts a DefinitionModel to a domain Definition.
func (m DefinitionMapper) ToDomain(e DefinitionModel) lexicon.Definition {
	return lexicon.NewDefinition(e.DefNum, e.ShortDefinition, e.Queries)
}

// LemmaMapper maps lemma rows to lexical info. The speaker is not stored on
// the row; it is joined from the line the token occurs on.
type LemmaMapper struct{}

// ToDomain converts a LemmaModel to lexical info without a speaker.
func (m LemmaMapper) ToDomain(e LemmaModel) lexicon.Info {
	return m.WithSpeaker(e, "")
}

// WithSpeaker converts a LemmaModel to lexical info spoken by speaker.
func (m LemmaMapper) WithSpeaker(e LemmaModel, speaker string) lexicon.Info {
	return lexicon.NewInfo(e.LemmaID, e.Lemma, e.Form, e.LineNumber, e.Postag, speaker)
}
