package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SortBy selects the ordering criterion for search results.
type SortBy string

const (
	SortByRelevance       SortBy = "relevance"
	SortByLastUpdatedDate SortBy = "lastUpdatedDate"
	SortBySubmittedDate   SortBy = "submittedDate"
)

// SortOrder selects the direction of the ordering.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// DefaultMaxResults is the page size used when none is requested.
const DefaultMaxResults = 10

// Query holds the request parameters for one export API call.
//
// The zero value is not useful; start from NewQuery and chain the With
// methods. Query is a value type, so a derived query never mutates the
// one it was derived from.
type Query struct {
	Search     string
	IDList     []string
	Start      int
	MaxResults int
	SortBy     SortBy
	SortOrder  SortOrder
}

// NewQuery returns a Query with the API defaults (start 0, ten results).
func NewQuery() Query {
	return Query{MaxResults: DefaultMaxResults}
}

// WithSearch sets the search expression.
func (q Query) WithSearch(expr Expr) Query {
	q.Search = stripOuterParens(expr.QueryString())
	return q
}

// WithRawSearch sets the search expression from an already rendered string.
func (q Query) WithRawSearch(s string) Query {
	q.Search = s
	return q
}

// WithIDList sets the article ids to look up.
func (q Query) WithIDList(ids ...string) Query {
	q.IDList = ids
	return q
}

// WithStart sets the index of the first result to return.
func (q Query) WithStart(start int) Query {
	q.Start = start
	return q
}

// WithMaxResults sets the page size.
func (q Query) WithMaxResults(n int) Query {
	q.MaxResults = n
	return q
}

// WithSortBy sets the ordering criterion.
func (q Query) WithSortBy(s SortBy) Query {
	q.SortBy = s
	return q
}

// WithSortOrder sets the ordering direction.
func (q Query) WithSortOrder(o SortOrder) Query {
	q.SortOrder = o
	return q
}

// NextPage returns the query for the page following this one.
func (q Query) NextPage() Query {
	q.Start += q.MaxResults
	return q
}

// IsEmpty reports whether the query selects nothing at all.
func (q Query) IsEmpty() bool {
	return q.Search == "" && len(q.IDList) == 0
}

// Values renders the query as URL parameters. Unset optional parameters
// are omitted.
func (q Query) Values() url.Values {
	v := url.Values{}

	if q.Search != "" {
		v.Set("search_query", q.Search)
	}
	if len(q.IDList) > 0 {
		v.Set("id_list", strings.Join(q.IDList, ","))
	}

	v.Set("start", strconv.Itoa(q.Start))
	v.Set("max_results", strconv.Itoa(q.MaxResults))

	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", string(q.SortOrder))
	}

	return v
}

// URL renders the full request URL against the given base. Encoding via
// url.Values sorts parameters by key, so the result is deterministic and
// usable as a cache key.
func (q Query) URL(base string) string {
	return base + "?" + q.Values().Encode()
}
