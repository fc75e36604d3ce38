package persistence

// LineModel represents one line of the text in the database.
type LineModel struct {
	LineNumber  int     `gorm:"column:line_number;primaryKey;autoIncrement:false"`
	LineText    *string `gorm:"column:line_text;type:text"`
	Speaker     *string `gorm:"column:speaker;index;size:255"`
	NormSpeaker *string `gorm:"column:norm_speaker;size:255"`
	EngSpeaker  *string `gorm:"column:eng_speaker;size:255"`
}

// TableName returns the table name.
func (LineModel) TableName() string {
	return "full_text"
}

// LemmaModel represents one lemmatised token occurrence in the database.
type LemmaModel struct {
	LemmaID     int64  `gorm:"column:lemma_id;primaryKey;autoIncrement:false"`
	LineNumber  int    `gorm:"column:line_number;primaryKey;autoIncrement:false;index"`
	Lemma       string `gorm:"column:lemma;index;size:255"`
	FullEng     string `gorm:"column:full_eng;type:text"`
	URN         string `gorm:"column:urn;size:255"`
	Normalized  string `gorm:"column:normalized;index;size:255"`
	EngLemma    string `gorm:"column:eng_lemma;size:255"`
	Form        string `gorm:"column:form;index;size:255"`
	NormForm    string `gorm:"column:norm_form;index;size:255"`
	Postag      string `gorm:"column:postag;size:32"`
	FormEng     string `gorm:"column:form_eng;size:255"`
	NormFormEng string `gorm:"column:norm_form_eng;size:255"`
}

// TableName returns the table name.
func (LemmaModel) TableName() string {
	return "lemma_data"
}

// DefinitionModel represents one numbered dictionary sense of a lemma.
type DefinitionModel struct {
	LemmaID         int64  `gorm:"column:lemma_id;primaryKey;autoIncrement:false"`
	DefNum          int    `gorm:"column:def_num;primaryKey;autoIncrement:false"`
	ShortDefinition string `gorm:"column:short_definition;type:text"`
	Queries         string `gorm:"column:queries;type:text"`
}

// TableName returns the table name.
func (DefinitionModel) TableName() string {
	return "lemma_definitions"
}
