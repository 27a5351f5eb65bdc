// Package atom decodes the Atom feeds served by the arXiv export API.
package atom

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"time"

	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Feed is the top-level Atom document. The totalResults, startIndex and
// itemsPerPage elements live in the OpenSearch namespace; the decoder
// matches them by local name.
type Feed struct {
	XMLName      xml.Name `xml:"feed"`
	TotalResults int      `xml:"totalResults"`
	StartIndex   int      `xml:"startIndex"`
	ItemsPerPage int      `xml:"itemsPerPage"`
	Entries      []Entry  `xml:"entry"`
}

// Entry is one article in the feed. The doi, comment, journal_ref and
// primary_category elements live in the arxiv namespace.
type Entry struct {
	ID              string     `xml:"id"`
	Title           string     `xml:"title"`
	Summary         string     `xml:"summary"`
	Updated         Time       `xml:"updated"`
	Published       Time       `xml:"published"`
	Authors         []Author   `xml:"author"`
	Links           []Link     `xml:"link"`
	PrimaryCategory Category   `xml:"primary_category"`
	Categories      []Category `xml:"category"`
	DOI             string     `xml:"doi"`
	Comment         string     `xml:"comment"`
	JournalRef      string     `xml:"journal_ref"`
}

// Author carries the author's display name.
type Author struct {
	Name string `xml:"name"`
}

// Link is an entry link with its Atom attributes.
type Link struct {
	Title       string `xml:"title,attr"`
	Rel         string `xml:"rel,attr"`
	Href        string `xml:"href,attr"`
	ContentType string `xml:"type,attr"`
}

// Category is a subject classification term.
type Category struct {
	Term   string `xml:"term,attr"`
	Scheme string `xml:"scheme,attr"`
}

// Time decodes the RFC 3339 timestamps the feed carries.
type Time struct {
	time.Time
}

// UnmarshalXML implements xml.Unmarshaler.
func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTimestamp, "failed to parse feed timestamp"), "value", raw)
	}

	t.Time = parsed
	return nil
}

// Decode reads an Atom feed from r.
func Decode(r io.Reader) (*Feed, error) {
	var feed Feed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		if errors.Is(err, domain.ErrInvalidTimestamp) {
			return nil, err
		}
		return nil, zerr.Wrap(domain.ErrFeedDecodeFailed, err.Error())
	}
	return &feed, nil
}

// Result maps the feed to the domain representation.
func (f *Feed) Result(log ports.Logger) *domain.SearchResult {
	papers := make([]domain.Paper, len(f.Entries))
	for i, entry := range f.Entries {
		papers[i] = entry.paper(log)
	}

	return &domain.SearchResult{
		Papers:       papers,
		TotalResults: f.TotalResults,
		StartIndex:   f.StartIndex,
		ItemsPerPage: f.ItemsPerPage,
	}
}

func (e Entry) paper(log ports.Logger) domain.Paper {
	authors := make([]string, len(e.Authors))
	for i, a := range e.Authors {
		authors[i] = a.Name
	}

	categories := make([]string, len(e.Categories))
	for i, c := range e.Categories {
		categories[i] = c.Term
	}

	links := make([]domain.Link, len(e.Links))
	for i, l := range e.Links {
		links[i] = domain.Link{
			Title:       l.Title,
			Rel:         l.Rel,
			Href:        l.Href,
			ContentType: l.ContentType,
		}
	}

	return domain.Paper{
		ID:              e.ID,
		Title:           strings.TrimSpace(e.Title),
		Summary:         strings.TrimSpace(e.Summary),
		Authors:         authors,
		DOI:             e.DOI,
		Comment:         e.Comment,
		JournalRef:      e.JournalRef,
		PrimaryCategory: e.PrimaryCategory.Term,
		Categories:      categories,
		PDFURL:          e.pdfURL(log),
		Links:           links,
		Published:       e.Published.Time,
		Updated:         e.Updated.Time,
	}
}

// pdfURL returns the href of the link titled "pdf". The feed should carry
// at most one; extras are ignored with a warning.
func (e Entry) pdfURL(log ports.Logger) string {
	var href string
	for _, link := range e.Links {
		if link.Title != "pdf" {
			continue
		}
		if href != "" {
			log.Warn("multiple pdf links found for entry " + e.ID)
			break
		}
		href = link.Href
	}
	return href
}
