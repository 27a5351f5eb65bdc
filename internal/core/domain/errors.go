package domain

import "go.trai.ch/zerr"

var (
	// ErrRequestFailed is returned when a request to the export API fails after all retries.
	ErrRequestFailed = zerr.New("arxiv api request failed")

	// ErrUnexpectedStatus is returned when the export API answers with a non-200 status.
	ErrUnexpectedStatus = zerr.New("unexpected api response status")

	// ErrFeedDecodeFailed is returned when the Atom response body cannot be decoded.
	ErrFeedDecodeFailed = zerr.New("failed to decode atom feed")

	// ErrEmptyQuery is returned when a request carries neither a search expression nor an id list.
	ErrEmptyQuery = zerr.New("query has no search expression and no id list")

	// ErrInvalidTimestamp is returned when a range bound cannot be parsed.
	ErrInvalidTimestamp = zerr.New("invalid timestamp")

	// ErrPaperNotFound is returned when an id lookup yields no entries.
	ErrPaperNotFound = zerr.New("paper not found")

	// ErrDownloadFailed is returned when fetching a PDF fails.
	ErrDownloadFailed = zerr.New("pdf download failed")

	// ErrCacheWriteFailed is returned when a feed cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write feed cache entry")
)
