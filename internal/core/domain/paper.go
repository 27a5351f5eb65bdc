package domain

import "time"

// Link is one of the alternate/related links carried by a feed entry.
type Link struct {
	Title       string `json:"title,omitzero"`
	Rel         string `json:"rel,omitzero"`
	Href        string `json:"href"`
	ContentType string `json:"content_type,omitzero"`
}

// Paper is one arXiv article as returned by the export API.
type Paper struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`

	Authors []string `json:"authors"`

	DOI        string `json:"doi,omitzero"`
	Comment    string `json:"comment,omitzero"`
	JournalRef string `json:"journal_ref,omitzero"`

	PrimaryCategory string   `json:"primary_category"`
	Categories      []string `json:"categories"`

	PDFURL string `json:"pdf_url,omitzero"`
	Links  []Link `json:"links"`

	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
}

// SearchResult is one page of search results plus the OpenSearch paging
// counters the feed carries.
type SearchResult struct {
	Papers       []Paper `json:"papers"`
	TotalResults int     `json:"total_results"`
	StartIndex   int     `json:"start_index"`
	ItemsPerPage int     `json:"items_per_page"`
}

// HasMore reports whether pages beyond this one exist.
func (r *SearchResult) HasMore() bool {
	return r.StartIndex+len(r.Papers) < r.TotalResults
}
