package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Field identifies an entry field addressable in a search expression.
type Field string

const (
	FieldTitle            Field = "ti"
	FieldAuthor           Field = "au"
	FieldAbstract         Field = "abs"
	FieldComment          Field = "co"
	FieldJournalReference Field = "jr"
	FieldCategory         Field = "cat"
	FieldReportNumber     Field = "rn"
	FieldDOI              Field = "doi"
	FieldAll              Field = "all"
)

// RangeField identifies a date field addressable in a range expression.
type RangeField string

const (
	RangeLastUpdated RangeField = "lastUpdatedDate"
	RangeSubmitted   RangeField = "submittedDate"
)

// rangeTimeLayout is the timestamp format the export API accepts inside
// range expressions, e.g. 1970-01-01T00:00:00.000000000Z.
const rangeTimeLayout = "2006-01-02T15:04:05.000000000Z"

// Expr is a node of a search expression tree.
//
// QueryString renders the node as the export API expects it, including
// grouping parentheses. String renders the same text with the outermost
// parentheses stripped, which is how a whole expression reads best.
type Expr interface {
	QueryString() string
}

// Term matches a single field against a value, rendered as "<field>:<value>".
type Term struct {
	Field Field
	Value string
}

// NewTerm creates a Term for the given field and value.
func NewTerm(field Field, value string) Term {
	return Term{Field: field, Value: value}
}

// QueryString renders the term.
func (t Term) QueryString() string {
	return string(t.Field) + ":" + t.Value
}

func (t Term) String() string {
	return t.QueryString()
}

// Range restricts a date field to an interval, rendered as
// "<field>:[<start> TO <end>]".
type Range struct {
	Field RangeField
	Start time.Time
	End   time.Time
}

// NewRange creates a Range over the given interval.
func NewRange(field RangeField, start, end time.Time) Range {
	return Range{Field: field, Start: start, End: end}
}

// rfc2822NoWeekdayLayout accepts the RFC 2822 form without the optional
// leading weekday.
const rfc2822NoWeekdayLayout = "2 Jan 2006 15:04:05 -0700"

// RangeFromISO8601 parses the bounds as ISO 8601 timestamps. The RFC 3339
// profile is the accepted subset.
func RangeFromISO8601(field RangeField, start, end string) (Range, error) {
	return parseRange(field, start, end, time.RFC3339)
}

// RangeFromRFC3339 parses the bounds as RFC 3339 timestamps.
func RangeFromRFC3339(field RangeField, start, end string) (Range, error) {
	return parseRange(field, start, end, time.RFC3339)
}

// RangeFromRFC2822 parses the bounds as RFC 2822 timestamps, with or
// without the optional weekday.
func RangeFromRFC2822(field RangeField, start, end string) (Range, error) {
	return parseRange(field, start, end, time.RFC1123Z, rfc2822NoWeekdayLayout)
}

// RangeFromDate parses the bounds as plain YYYY-MM-DD dates.
func RangeFromDate(field RangeField, start, end string) (Range, error) {
	return parseRange(field, start, end, time.DateOnly)
}

func parseRange(field RangeField, start, end string, layouts ...string) (Range, error) {
	s, err := parseTimestamp(start, layouts)
	if err != nil {
		return Range{}, err
	}
	e, err := parseTimestamp(end, layouts)
	if err != nil {
		return Range{}, err
	}
	return Range{Field: field, Start: s, End: e}, nil
}

func parseTimestamp(value string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, zerr.With(zerr.Wrap(ErrInvalidTimestamp, "failed to parse range bound"), "value", value)
}

// QueryString renders the range with UTC bounds.
func (r Range) QueryString() string {
	return string(r.Field) + ":[" +
		r.Start.UTC().Format(rangeTimeLayout) + " TO " +
		r.End.UTC().Format(rangeTimeLayout) + "]"
}

func (r Range) String() string {
	return r.QueryString()
}

// andExpr joins sub-expressions with AND.
type andExpr struct {
	exprs []Expr
}

// And joins the given expressions with AND.
func And(exprs ...Expr) Expr {
	return andExpr{exprs: exprs}
}

func (a andExpr) QueryString() string {
	return joinExprs(a.exprs, " AND ")
}

func (a andExpr) String() string {
	return stripOuterParens(a.QueryString())
}

// orExpr joins sub-expressions with OR.
type orExpr struct {
	exprs []Expr
}

// Or joins the given expressions with OR.
func Or(exprs ...Expr) Expr {
	return orExpr{exprs: exprs}
}

func (o orExpr) QueryString() string {
	return joinExprs(o.exprs, " OR ")
}

func (o orExpr) String() string {
	return stripOuterParens(o.QueryString())
}

// andNotExpr matches the left expression while excluding the right one.
type andNotExpr struct {
	left  Expr
	right Expr
}

// AndNot matches left while excluding right.
func AndNot(left, right Expr) Expr {
	return andNotExpr{left: left, right: right}
}

func (n andNotExpr) QueryString() string {
	return "(" + n.left.QueryString() + " ANDNOT " + n.right.QueryString() + ")"
}

func (n andNotExpr) String() string {
	return stripOuterParens(n.QueryString())
}

// groupExpr wraps an expression in explicit parentheses.
type groupExpr struct {
	inner Expr
}

// Group wraps the given expression in parentheses.
func Group(inner Expr) Expr {
	return groupExpr{inner: inner}
}

func (g groupExpr) QueryString() string {
	return "(" + g.inner.QueryString() + ")"
}

func (g groupExpr) String() string {
	return stripOuterParens(g.QueryString())
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.QueryString()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func stripOuterParens(s string) string {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1]
	}
	return s
}
