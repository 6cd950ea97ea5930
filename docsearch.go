// Package docsearch provides a local, CLI-based search tool for the dbt
// documentation corpus. It downloads the flat-text documentation dump
// published at docs.getdbt.com, caches it locally with time-based
// invalidation, reconstructs the individual documentation pages, and
// performs case-insensitive keyword search across them.
//
// This package contains domain types, interfaces, and the pure pipeline
// logic (segmentation and matching) following Ben Johnson's Standard
// Package Layout. Implementations with external dependencies live in
// subdirectories named after their primary dependency (e.g., http/, fs/).
package docsearch

// DefaultCorpusURL is the published flat-text dump of the dbt docs site.
const DefaultCorpusURL = "https://docs.getdbt.com/llms-full.txt"

// DefaultSite is the URL prefix used to recognize documentation page
// links inside the corpus.
const DefaultSite = "https://docs.getdbt.com"

// CorpusName is the file name under which the corpus is cached.
const CorpusName = "llms-full.txt"
