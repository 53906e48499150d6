package capture

import (
	"errors"
	"time"
)

/* Record represents a single captured inbound request
 * Uses value semantics as it represents data, not behavior
 */
type Record struct {
	ID     string
	Method string
	// PathName is the request path with the capture prefix already
	// stripped. Never empty: "/" when nothing remains after stripping.
	PathName   string
	IP         string
	StatusCode int
	// ContentType and ContentLength are nil when the client did not
	// declare them. ContentLength reflects the declared header, not a
	// measurement of the body.
	ContentType   *string
	ContentLength *int64
	// QueryParams is nil (not an empty map) when the request carried no
	// query string. The distinction survives storage and serialization.
	QueryParams map[string]string
	// Headers keys are lower-cased; multi-valued headers are joined
	// with ", ".
	Headers   map[string]string
	Body      *string
	CreatedAt time.Time
}

// ErrNotFound is returned when a webhook id has no matching record.
var ErrNotFound = errors.New("webhook not found")

// ErrInvalidLimit is returned when a page size falls outside [MinLimit, MaxLimit].
var ErrInvalidLimit = errors.New("limit out of range")
