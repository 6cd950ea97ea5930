package docsearch

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Boundary is the delimiter line separating candidate pages in the
// corpus.
const Boundary = "---"

// headerPrefix marks the level-3 heading line that opens a candidate
// page.
const headerPrefix = "### "

// segmentState enumerates the segmenter's parsing states.
type segmentState int

const (
	// stateSeeking skips preamble until a boundary line.
	stateSeeking segmentState = iota

	// stateHeaderPending expects a header line after a boundary.
	stateHeaderPending

	// stateResolvingURL scans lines after the header for a
	// documentation URL.
	stateResolvingURL

	// stateInPage accumulates content lines until the next boundary.
	stateInPage
)

// Segmenter reconstructs the ordered sequence of documentation pages
// from the flat corpus text. A page opens with a boundary line followed
// by a "### " header; its URL is the first recognized documentation
// link on a subsequent line; its content runs from the header line up
// to (not including) the next boundary. Runs that never resolve a URL
// produce no page.
type Segmenter struct {
	site string
}

// NewSegmenter creates a Segmenter that recognizes links with the given
// docsite prefix. An empty site defaults to DefaultSite.
func NewSegmenter(site string) *Segmenter {
	if site == "" {
		site = DefaultSite
	}
	return &Segmenter{site: site}
}

// Segment streams the corpus line by line and returns pages in
// discovery order. End of input finalizes a page in progress; a run
// still resolving its URL at end of input is discarded.
func (s *Segmenter) Segment(r io.Reader) ([]*Page, error) {
	var (
		state   = stateSeeking
		pending []string // buffered lines between header and URL resolution
		current *Page
		pages   []*Page
	)

	flush := func() {
		if current != nil {
			current.Position = len(pages)
			pages = append(pages, current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		// A boundary both closes any open page and restarts header
		// detection.
		if line == Boundary {
			flush()
			pending = nil
			state = stateHeaderPending
			continue
		}

		switch state {
		case stateSeeking:
			// Preamble; belongs to no page.

		case stateHeaderPending:
			if strings.HasPrefix(line, headerPrefix) {
				pending = []string{line}
				state = stateResolvingURL
			} else {
				state = stateSeeking
			}

		case stateResolvingURL:
			pending = append(pending, line)
			if url, ok := s.resolveURL(line); ok {
				current = &Page{URL: url, Lines: pending}
				pending = nil
				state = stateInPage
			}

		case stateInPage:
			current.Lines = append(current.Lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(EINTERNAL, "read corpus: %s", err)
	}

	flush()

	return pages, nil
}

// resolveURL extracts a documentation URL from a line. A parenthesized
// markdown-link target is preferred whenever one is present anywhere on
// the line; the bare-token form (terminated by whitespace, ')' or ']')
// is only consulted when no parenthesized form parses.
func (s *Segmenter) resolveURL(line string) (string, bool) {
	if i := strings.Index(line, "("+s.site); i >= 0 {
		rest := line[i+1:]
		if j := strings.IndexByte(rest, ')'); j >= 0 {
			return rest[:j], true
		}
	}
	if i := strings.Index(line, s.site); i >= 0 {
		tok := line[i:]
		if j := strings.IndexFunc(tok, isURLTerminator); j >= 0 {
			tok = tok[:j]
		}
		return tok, true
	}
	return "", false
}

func isURLTerminator(r rune) bool {
	return r == ')' || r == ']' || unicode.IsSpace(r)
}
