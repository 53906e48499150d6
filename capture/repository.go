package capture

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// Page is one slice of a reverse-chronological scan over the store.
type Page struct {
	Records []Record
	// NextCursor is the id to pass to fetch the following page.
	// Empty when the scan reached the oldest record.
	NextCursor string
}

// Stats summarizes the store contents for the metrics exporter.
type Stats struct {
	Total    int64
	ByMethod map[string]int64
	ByStatus map[int]int64
}

// Reader provides read operations over captured webhooks
type Reader interface {
	/* Context is always the first parameter in functions that do I/O
	 * This allows for cancellation, timeouts, and shared values
	 */
	Select(ctx context.Context, id string) (Record, error)
	/* SelectPage returns records newest-first, bounded by limit,
	 * starting strictly after cursor when one is given. The cursor is
	 * an id boundary, not an offset, so pages never re-return a record
	 * already seen even if inserts land mid-scan.
	 */
	SelectPage(ctx context.Context, limit int, cursor string) (Page, error)
	/* SelectByIDs returns the records matching ids in the order of the
	 * backing query (ascending id), which is not the submission order.
	 * Unknown ids are skipped, not reported.
	 */
	SelectByIDs(ctx context.Context, ids []string) ([]Record, error)
	Stats(ctx context.Context) (Stats, error)
}

// Writer provides write operations; records are append-only
type Writer interface {
	Insert(ctx context.Context, rec Record) (string, error)
	/* DeleteAll clears the store. Only the seeding path uses it;
	 * nothing in request handling mutates existing records.
	 */
	DeleteAll(ctx context.Context) error
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
