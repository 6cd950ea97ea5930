package docsearch

import "strings"

// Match scans pages in discovery order and returns the URLs of pages
// whose content contains at least one keyword as a case-insensitive
// literal substring. Matching is OR across keywords with short-circuit
// semantics: the first hit qualifies the page and scanning of that page
// stops. The result is ordered by first match and never contains a URL
// twice. Zero matches is a valid, non-error outcome.
func Match(pages []*Page, query Query) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	keywords := make([]string, len(query.Keywords))
	for i, kw := range query.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	var urls []string
	seen := make(map[string]bool)

	for _, page := range pages {
		if seen[page.URL] {
			continue
		}
		if pageMatches(page, keywords) {
			seen[page.URL] = true
			urls = append(urls, page.URL)
		}
	}

	return urls, nil
}

func pageMatches(page *Page, keywords []string) bool {
	for _, line := range page.Lines {
		folded := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				return true
			}
		}
	}
	return false
}
