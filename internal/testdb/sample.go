package testdb

import "github.com/helixml/antigone/infrastructure/persistence"

// Sample returns a small slice of the opening of the text. Line 4 has no
// row, line 7 has no speaker, and lemma 1 occurs on lines 1 and 6.
func Sample() Fixture {
	return Fixture{
		Lines: []persistence.LineModel{
			{LineNumber: 1, LineText: Str("ὦ κοινὸν αὐτάδελφον Ἰσμήνης κάρα,"), Speaker: Str("Antigone")},
			{LineNumber: 2, LineText: Str("ἆρ᾽ οἶσθ᾽ ὅ τι Ζεὺς τῶν ἀπ᾽ Οἰδίπου κακῶν"), Speaker: Str("Antigone")},
			{LineNumber: 3, LineText: Str("ὁποῖον οὐχὶ νῷν ἔτι ζώσαιν τελεῖ;"), Speaker: Str("Antigone")},
			{LineNumber: 5, LineText: Str("τί δ᾽ ἔστι;"), Speaker: Str("Ismene")},
			{LineNumber: 6, LineText: Str("τοῦ κοινοῦ λόγου"), Speaker: Str("Creon")},
			{LineNumber: 7, LineText: Str("ἰώ")},
		},
		Lemmas: []persistence.LemmaModel{
			{
				LemmaID: 1, LineNumber: 1, Lemma: "κοινός", Form: "κοινὸν",
				Normalized: "κοινος", NormForm: "κοινον", Postag: "a-s---ma-",
				EngLemma: "common", FormEng: "common", NormFormEng: "common", FullEng: "common, shared",
			},
			{
				LemmaID: 2, LineNumber: 1, Lemma: "κάρα", Form: "κάρα",
				Normalized: "καρα", NormForm: "καρα", Postag: "n-s---na-",
				EngLemma: "head", FormEng: "head", NormFormEng: "head", FullEng: "head",
			},
			{
				LemmaID: 3, LineNumber: 2, Lemma: "Ζεύς", Form: "Ζεὺς",
				Normalized: "Ζευς", NormForm: "Ζευς", Postag: "n-s---mn-",
				EngLemma: "Zeus", FormEng: "Zeus", NormFormEng: "Zeus", FullEng: "Zeus",
			},
			{
				LemmaID: 4, LineNumber: 2, Lemma: "κακός", Form: "κακῶν",
				Normalized: "κακος", NormForm: "κακων", Postag: "a-p---ng-",
				EngLemma: "bad", FormEng: "of evils", NormFormEng: "of evils", FullEng: "bad, evil",
			},
			{
				LemmaID: 1, LineNumber: 6, Lemma: "κοινός", Form: "κοινοῦ",
				Normalized: "κοινος", NormForm: "κοινου", Postag: "a-s---mg-",
				EngLemma: "common", FormEng: "of common", NormFormEng: "of common", FullEng: "common, shared",
			},
		},
		Definitions: []persistence.DefinitionModel{
			{LemmaID: 1, DefNum: 1, ShortDefinition: "common, shared", Queries: "common"},
			{LemmaID: 1, DefNum: 2, ShortDefinition: "[unavailable]"},
			{LemmaID: 2, DefNum: 1, ShortDefinition: "head", Queries: "head"},
			{LemmaID: 3, DefNum: 1, ShortDefinition: "Zeus", Queries: "Zeus"},
			{LemmaID: 4, DefNum: 1, ShortDefinition: "bad", Queries: "bad"},
			{LemmaID: 4, DefNum: 2, ShortDefinition: "evil", Queries: "evil"},
		},
	}
}
