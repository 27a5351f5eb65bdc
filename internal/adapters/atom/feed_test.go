package atom_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.trai.ch/arxiv/internal/adapters/atom"
	"go.trai.ch/arxiv/internal/core/domain"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title type="html">ArXiv Query: search_query=all:RAG</title>
  <opensearch:totalResults>218</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>10</opensearch:itemsPerPage>
  <entry>
    <id>http://arxiv.org/abs/2402.16893v1</id>
    <updated>2024-02-26T18:56:24Z</updated>
    <published>2024-02-23T18:35:23Z</published>
    <title>The Good and The Bad: Exploring Privacy Issues in Retrieval-Augmented
  Generation (RAG)</title>
    <summary>  Retrieval-augmented generation (RAG) is a powerful technique to facilitate
language models with proprietary and private data.
</summary>
    <author>
      <name>Shenglai Zeng</name>
    </author>
    <author>
      <name>Jiankun Zhang</name>
    </author>
    <arxiv:comment>11 pages</arxiv:comment>
    <arxiv:doi>10.0000/example.2402.16893</arxiv:doi>
    <link href="http://arxiv.org/abs/2402.16893v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2402.16893v1" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="cs.CR" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CR" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
</feed>`

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string) {}
func (l *recordingLogger) Error(error) {}
func (l *recordingLogger) Warn(msg string) {
	l.warnings = append(l.warnings, msg)
}

func TestDecode(t *testing.T) {
	feed, err := atom.Decode(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if feed.TotalResults != 218 {
		t.Errorf("unexpected totalResults: %d", feed.TotalResults)
	}
	if feed.StartIndex != 0 {
		t.Errorf("unexpected startIndex: %d", feed.StartIndex)
	}
	if feed.ItemsPerPage != 10 {
		t.Errorf("unexpected itemsPerPage: %d", feed.ItemsPerPage)
	}
	if len(feed.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(feed.Entries))
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := atom.Decode(strings.NewReader("not xml"))
	if err == nil {
		t.Fatal("expected error for invalid document, got nil")
	}
	if !errors.Is(err, domain.ErrFeedDecodeFailed) {
		t.Errorf("expected ErrFeedDecodeFailed in chain, got: %v", err)
	}
}

func TestResult(t *testing.T) {
	feed, err := atom.Decode(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := &recordingLogger{}
	result := feed.Result(log)

	if len(result.Papers) != 1 {
		t.Fatalf("expected 1 paper, got %d", len(result.Papers))
	}

	paper := result.Papers[0]
	if paper.ID != "http://arxiv.org/abs/2402.16893v1" {
		t.Errorf("unexpected id: %s", paper.ID)
	}
	if !strings.HasPrefix(paper.Title, "The Good and The Bad") {
		t.Errorf("unexpected title: %q", paper.Title)
	}
	if strings.HasPrefix(paper.Summary, " ") {
		t.Errorf("summary not trimmed: %q", paper.Summary)
	}
	if len(paper.Authors) != 2 || paper.Authors[0] != "Shenglai Zeng" {
		t.Errorf("unexpected authors: %v", paper.Authors)
	}
	if paper.Comment != "11 pages" {
		t.Errorf("unexpected comment: %s", paper.Comment)
	}
	if paper.DOI != "10.0000/example.2402.16893" {
		t.Errorf("unexpected doi: %s", paper.DOI)
	}
	if paper.PrimaryCategory != "cs.CR" {
		t.Errorf("unexpected primary category: %s", paper.PrimaryCategory)
	}
	if len(paper.Categories) != 2 || paper.Categories[1] != "cs.CL" {
		t.Errorf("unexpected categories: %v", paper.Categories)
	}
	if paper.PDFURL != "http://arxiv.org/pdf/2402.16893v1" {
		t.Errorf("unexpected pdf url: %s", paper.PDFURL)
	}
	if len(paper.Links) != 2 {
		t.Errorf("expected 2 links, got %d", len(paper.Links))
	}

	wantPublished := time.Date(2024, 2, 23, 18, 35, 23, 0, time.UTC)
	if !paper.Published.Equal(wantPublished) {
		t.Errorf("unexpected published time: %v", paper.Published)
	}

	if len(log.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", log.warnings)
	}

	if !result.HasMore() {
		t.Error("expected more pages for totalResults=218")
	}
}

func TestResult_MultiplePDFLinks(t *testing.T) {
	doc := strings.Replace(sampleFeed,
		`<link title="pdf" href="http://arxiv.org/pdf/2402.16893v1" rel="related" type="application/pdf"/>`,
		`<link title="pdf" href="http://arxiv.org/pdf/2402.16893v1" rel="related" type="application/pdf"/>
    <link title="pdf" href="http://arxiv.org/pdf/2402.16893v2" rel="related" type="application/pdf"/>`, 1)

	feed, err := atom.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := &recordingLogger{}
	result := feed.Result(log)

	// The first pdf link wins and the duplicate is reported.
	if got := result.Papers[0].PDFURL; got != "http://arxiv.org/pdf/2402.16893v1" {
		t.Errorf("unexpected pdf url: %s", got)
	}
	if len(log.warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", log.warnings)
	}
}

func TestDecode_BadTimestamp(t *testing.T) {
	doc := strings.Replace(sampleFeed, "2024-02-26T18:56:24Z", "yesterday", 1)

	_, err := atom.Decode(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected error for bad timestamp, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp in chain, got: %v", err)
	}
}
