package docsearch

// Page represents a logical documentation unit recovered from the
// corpus. Pages are reconstructed fresh on every run and never
// persisted.
type Page struct {
	// URL is the canonical documentation URL the page resolved to.
	URL string

	// Lines is the page content, from its header line up to (not
	// including) the next boundary line.
	Lines []string

	// Position is the page's discovery order within the corpus,
	// starting at 0.
	Position int
}

// Query represents a keyword search against the corpus. Keywords are
// compared case-insensitively as literal substrings.
type Query struct {
	Keywords []string
}

// Validate returns an error if the query contains invalid fields.
func (q *Query) Validate() error {
	if len(q.Keywords) == 0 {
		return Errorf(EINVALID, "at least one keyword required")
	}
	for _, kw := range q.Keywords {
		if kw == "" {
			return Errorf(EINVALID, "keyword must not be empty")
		}
	}
	return nil
}
