package repository

// WithLineNumber filters by the "line_number" column.
func WithLineNumber(n int) Option {
	return WithCondition("line_number", n)
}

// WithLineRange filters line_number to the inclusive range [start, end].
func WithLineRange(start, end int) Option {
	return WithConditionBetween("line_number", start, end)
}

// WithLemmaID filters by the "lemma_id" column.
func WithLemmaID(id int64) Option {
	return WithCondition("lemma_id", id)
}

// WithLemmaIDIn filters by the "lemma_id" column using IN.
func WithLemmaIDIn(ids []int64) Option {
	return WithConditionIn("lemma_id", ids)
}
