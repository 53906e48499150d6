package capture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CapturedStatus is the status reported for every live capture,
// independent of whatever the caller sent.
const CapturedStatus = http.StatusCreated

/* FromRequest maps one inbound HTTP request to a Record, minus ID and
 * CreatedAt, which the Service assigns at insertion time. It never
 * rejects based on method, content type or body shape: the capture
 * surface accepts arbitrary traffic. The only failure mode is an I/O
 * error while draining the body.
 */
func FromRequest(r *http.Request, prefix string) (Record, error) {
	headers := normalizeHeaders(r)

	rec := Record{
		Method:     r.Method,
		PathName:   stripPrefix(r.URL.Path, prefix),
		IP:         clientIP(r),
		StatusCode: CapturedStatus,
		Headers:    headers,
		QueryParams: queryParams(r),
	}

	if ct, ok := headers["content-type"]; ok {
		rec.ContentType = &ct
	}

	// The declared content-length is trusted as-is; an absent or
	// unparseable header leaves the field nil rather than falling back
	// to measuring the body.
	if cl, ok := headers["content-length"]; ok {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			rec.ContentLength = &n
		}
	}

	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return Record{}, fmt.Errorf("reading request body: %w", err)
		}
		if len(raw) > 0 {
			body := string(raw)
			// JSON bodies are stored re-indented so the UI shows a
			// pretty-printed payload. json.Indent keeps key order and
			// number formatting, so re-parsing the stored body
			// recovers the original value.
			if isJSON(rec.ContentType) && json.Valid(raw) {
				var buf bytes.Buffer
				if err := json.Indent(&buf, raw, "", "  "); err == nil {
					body = buf.String()
				}
			}
			rec.Body = &body
		}
	}

	return rec, nil
}

func normalizeHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	// net/http promotes the Host header to r.Host; put it back so the
	// stored header set is complete.
	if r.Host != "" {
		headers["host"] = r.Host
	}
	return headers
}

func stripPrefix(path, prefix string) string {
	p := strings.TrimPrefix(path, prefix)
	if p == "" {
		return "/"
	}
	return p
}

/* queryParams rebuilds the full URL from the declared host (defaulting
 * to "localhost") plus the raw request URI, then flattens the query
 * string. Repeated keys keep the last value. A request with no query
 * parameters yields nil, not an empty map.
 */
func queryParams(r *http.Request) map[string]string {
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	full, err := url.Parse("http://" + host + r.URL.RequestURI())
	if err != nil {
		return nil
	}
	q := full.Query()
	if len(q) == 0 {
		return nil
	}
	params := make(map[string]string, len(q))
	for key, values := range q {
		params[key] = values[len(values)-1]
	}
	return params
}

// clientIP resolves the client address behind a reverse proxy.
// X-Real-Ip is a single IP; X-Forwarded-For can be a comma-separated
// chain where the first entry is the client.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i > 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isJSON(contentType *string) bool {
	if contentType == nil {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(*contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
