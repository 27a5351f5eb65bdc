package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/arxiv/internal/core/domain"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes a human readable listing of the result page.
func printResult(w io.Writer, result *domain.SearchResult) {
	_, _ = fmt.Fprintf(w, "%d of %d results\n\n", len(result.Papers), result.TotalResults)
	printPapers(w, result.Papers)
}

// printPapers writes one block per paper.
func printPapers(w io.Writer, papers []domain.Paper) {
	for _, paper := range papers {
		_, _ = fmt.Fprintln(w, paper.Title)
		_, _ = fmt.Fprintf(w, "  %s\n", paper.ID)
		if len(paper.Authors) > 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(paper.Authors, ", "))
		}
		if !paper.Published.IsZero() {
			_, _ = fmt.Fprintf(w, "  published %s\n", paper.Published.Format("2006-01-02"))
		}
		_, _ = fmt.Fprintln(w)
	}
}
