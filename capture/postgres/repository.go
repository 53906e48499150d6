package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/marcelsud/webhook-capture/capture"
)

/* PostgreSQL implementation of capture.Repository
 * One append-only table keyed by UUID. The primary key index also
 * serves the reverse-chronological cursor pagination, because ids are
 * UUIDv7 and therefore time-ordered.
 */

const selectColumns = `id, method, path_name, ip, status_code, content_type, content_length, query_params, headers, body, created_at`

type Repository struct {
	DB *sql.DB
}

// NewRepository opens a PostgreSQL connection with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig opens a PostgreSQL connection with a custom pool.
// maxOpenConns: max simultaneous connections (0 = unlimited)
// maxIdleConns: max idle connections kept in the pool
// maxLifeMinutes: max minutes a connection is reused
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

// Insert persists a fully populated record and returns its id
func (r *Repository) Insert(ctx context.Context, rec capture.Record) (string, error) {
	query := `
		INSERT INTO webhooks (id, method, path_name, ip, status_code, content_type, content_length, query_params, headers, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	headersJSON, err := json.Marshal(rec.Headers)
	if err != nil {
		return "", fmt.Errorf("marshaling headers: %w", err)
	}

	// nil query params are stored as NULL, not as an empty object
	var queryParamsJSON interface{}
	if rec.QueryParams != nil {
		b, err := json.Marshal(rec.QueryParams)
		if err != nil {
			return "", fmt.Errorf("marshaling query params: %w", err)
		}
		queryParamsJSON = b
	}

	var id string
	err = r.DB.QueryRowContext(ctx, query,
		rec.ID,
		rec.Method,
		rec.PathName,
		rec.IP,
		rec.StatusCode,
		rec.ContentType,
		rec.ContentLength,
		queryParamsJSON,
		headersJSON,
		rec.Body,
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting webhook: %w", err)
	}

	return id, nil
}

// Select looks up a record by id
func (r *Repository) Select(ctx context.Context, id string) (capture.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM webhooks WHERE id = $1`

	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return capture.Record{}, capture.ErrNotFound
	}
	if err != nil {
		return capture.Record{}, fmt.Errorf("selecting webhook: %w", err)
	}

	return rec, nil
}

// SelectPage returns one page of records, newest id first. The cursor
// is an exclusive id boundary, which keeps a scan stable under
// concurrent inserts (new rows get larger UUIDv7 ids and land before
// any cursor already handed out).
func (r *Repository) SelectPage(ctx context.Context, limit int, cursor string) (capture.Page, error) {
	if limit < capture.MinLimit {
		limit = capture.MinLimit
	}
	if limit > capture.MaxLimit {
		limit = capture.MaxLimit
	}

	// One extra row decides whether another page exists without a
	// second round trip.
	var (
		rows *sql.Rows
		err  error
	)
	if cursor != "" {
		query := `SELECT ` + selectColumns + ` FROM webhooks WHERE id < $1 ORDER BY id DESC LIMIT $2`
		rows, err = r.DB.QueryContext(ctx, query, cursor, limit+1)
	} else {
		query := `SELECT ` + selectColumns + ` FROM webhooks ORDER BY id DESC LIMIT $1`
		rows, err = r.DB.QueryContext(ctx, query, limit+1)
	}
	if err != nil {
		return capture.Page{}, fmt.Errorf("selecting webhooks page: %w", err)
	}
	defer rows.Close()

	records := make([]capture.Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return capture.Page{}, fmt.Errorf("scanning webhook: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return capture.Page{}, fmt.Errorf("iterating webhooks: %w", err)
	}

	page := capture.Page{Records: records}
	if len(records) > limit {
		page.Records = records[:limit]
		page.NextCursor = records[limit-1].ID
	}

	return page, nil
}

// SelectByIDs returns the records matching ids, in ascending id order
// (the order of the backing query, not the submission order).
func (r *Repository) SelectByIDs(ctx context.Context, ids []string) ([]capture.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectColumns + ` FROM webhooks WHERE id = ANY($1) ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("selecting webhooks by ids: %w", err)
	}
	defer rows.Close()

	var records []capture.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning webhook: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating webhooks: %w", err)
	}

	return records, nil
}

// Stats aggregates counts for the metrics exporter
func (r *Repository) Stats(ctx context.Context) (capture.Stats, error) {
	stats := capture.Stats{
		ByMethod: make(map[string]int64),
		ByStatus: make(map[int]int64),
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT method, COUNT(*) FROM webhooks GROUP BY method`)
	if err != nil {
		return capture.Stats{}, fmt.Errorf("counting webhooks by method: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var method string
		var count int64
		if err := rows.Scan(&method, &count); err != nil {
			return capture.Stats{}, fmt.Errorf("scanning method count: %w", err)
		}
		stats.ByMethod[method] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return capture.Stats{}, fmt.Errorf("iterating method counts: %w", err)
	}

	statusRows, err := r.DB.QueryContext(ctx, `SELECT status_code, COUNT(*) FROM webhooks GROUP BY status_code`)
	if err != nil {
		return capture.Stats{}, fmt.Errorf("counting webhooks by status: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var status int
		var count int64
		if err := statusRows.Scan(&status, &count); err != nil {
			return capture.Stats{}, fmt.Errorf("scanning status count: %w", err)
		}
		stats.ByStatus[status] = count
	}
	if err := statusRows.Err(); err != nil {
		return capture.Stats{}, fmt.Errorf("iterating status counts: %w", err)
	}

	return stats, nil
}

// DeleteAll removes every record. Seeding path only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM webhooks`); err != nil {
		return fmt.Errorf("deleting webhooks: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the webhooks table (useful for tests and first boot)
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS webhooks (
			id UUID PRIMARY KEY,
			method TEXT NOT NULL,
			path_name TEXT NOT NULL,
			ip TEXT NOT NULL,
			status_code INTEGER NOT NULL,
			content_type TEXT,
			content_length BIGINT,
			query_params JSONB,
			headers JSONB NOT NULL,
			body TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// DropTable removes the webhooks table (useful for tests)
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DROP TABLE IF EXISTS webhooks CASCADE`); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (capture.Record, error) {
	var (
		rec             capture.Record
		contentType     sql.NullString
		contentLength   sql.NullInt64
		queryParamsJSON []byte
		headersJSON     []byte
		body            sql.NullString
	)

	err := s.Scan(
		&rec.ID,
		&rec.Method,
		&rec.PathName,
		&rec.IP,
		&rec.StatusCode,
		&contentType,
		&contentLength,
		&queryParamsJSON,
		&headersJSON,
		&body,
		&rec.CreatedAt,
	)
	if err != nil {
		return capture.Record{}, err
	}

	if contentType.Valid {
		v := contentType.String
		rec.ContentType = &v
	}
	if contentLength.Valid {
		v := contentLength.Int64
		rec.ContentLength = &v
	}
	if body.Valid {
		v := body.String
		rec.Body = &v
	}
	if len(queryParamsJSON) > 0 {
		if err := json.Unmarshal(queryParamsJSON, &rec.QueryParams); err != nil {
			return capture.Record{}, fmt.Errorf("unmarshaling query params: %w", err)
		}
	}
	if len(headersJSON) > 0 {
		if err := json.Unmarshal(headersJSON, &rec.Headers); err != nil {
			return capture.Record{}, fmt.Errorf("unmarshaling headers: %w", err)
		}
	}

	return rec, nil
}
