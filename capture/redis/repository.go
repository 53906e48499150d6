package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of capture.Repository
 * One hash per record plus a lexicographic sorted set over ids. All
 * index members share score 0, so ZRevRangeByLex walks ids in
 * descending order; with UUIDv7 ids that is reverse-chronological.
 * Counter hashes keep Stats cheap without scanning every record.
 */

const (
	recordPrefix   = "capture"               // capture:{id} hash per record
	indexKey       = "capture:index"         // lexicographic zset of ids
	methodStatsKey = "capture:stats:methods" // method -> count
	statusStatsKey = "capture:stats:status"  // status code -> count
)

type Repository struct {
	client *redis.Client
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Repository{
		client: client,
	}, nil
}

func recordKey(id string) string {
	return fmt.Sprintf("%s:%s", recordPrefix, id)
}

// Insert persists the record hash, indexes its id and bumps the
// counters, all in one transaction.
func (r *Repository) Insert(ctx context.Context, rec capture.Record) (string, error) {
	fields, err := hashFromRecord(rec)
	if err != nil {
		return "", err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, recordKey(rec.ID), fields)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: 0, Member: rec.ID})
	pipe.HIncrBy(ctx, methodStatsKey, rec.Method, 1)
	pipe.HIncrBy(ctx, statusStatsKey, strconv.Itoa(rec.StatusCode), 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("storing webhook: %w", err)
	}

	return rec.ID, nil
}

// Select looks up a record by id
func (r *Repository) Select(ctx context.Context, id string) (capture.Record, error) {
	fields, err := r.client.HGetAll(ctx, recordKey(id)).Result()
	if err != nil {
		return capture.Record{}, fmt.Errorf("selecting webhook: %w", err)
	}
	if len(fields) == 0 {
		return capture.Record{}, capture.ErrNotFound
	}
	return recordFromHash(fields)
}

// SelectPage walks the id index newest-first with an exclusive cursor
// boundary.
func (r *Repository) SelectPage(ctx context.Context, limit int, cursor string) (capture.Page, error) {
	if limit < capture.MinLimit {
		limit = capture.MinLimit
	}
	if limit > capture.MaxLimit {
		limit = capture.MaxLimit
	}

	max := "+"
	if cursor != "" {
		max = "(" + cursor
	}

	// One extra id decides whether another page exists.
	ids, err := r.client.ZRevRangeByLex(ctx, indexKey, &redis.ZRangeBy{
		Max:   max,
		Min:   "-",
		Count: int64(limit + 1),
	}).Result()
	if err != nil {
		return capture.Page{}, fmt.Errorf("selecting webhooks page: %w", err)
	}

	hasMore := len(ids) > limit
	if hasMore {
		ids = ids[:limit]
	}

	records, err := r.fetchRecords(ctx, ids)
	if err != nil {
		return capture.Page{}, err
	}

	page := capture.Page{Records: records}
	if hasMore && len(records) > 0 {
		page.NextCursor = records[len(records)-1].ID
	}

	return page, nil
}

// SelectByIDs returns the records matching ids, in ascending id order
// (the order of the backing query, not the submission order).
func (r *Repository) SelectByIDs(ctx context.Context, ids []string) ([]capture.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	return r.fetchRecords(ctx, sorted)
}

// Stats reads the counter hashes maintained on insert
func (r *Repository) Stats(ctx context.Context) (capture.Stats, error) {
	total, err := r.client.ZCard(ctx, indexKey).Result()
	if err != nil {
		return capture.Stats{}, fmt.Errorf("counting webhooks: %w", err)
	}

	methods, err := r.client.HGetAll(ctx, methodStatsKey).Result()
	if err != nil {
		return capture.Stats{}, fmt.Errorf("reading method counters: %w", err)
	}

	statuses, err := r.client.HGetAll(ctx, statusStatsKey).Result()
	if err != nil {
		return capture.Stats{}, fmt.Errorf("reading status counters: %w", err)
	}

	stats := capture.Stats{
		Total:    total,
		ByMethod: make(map[string]int64, len(methods)),
		ByStatus: make(map[int]int64, len(statuses)),
	}
	for method, raw := range methods {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return capture.Stats{}, fmt.Errorf("parsing method counter: %w", err)
		}
		stats.ByMethod[method] = count
	}
	for status, raw := range statuses {
		code, err := strconv.Atoi(status)
		if err != nil {
			return capture.Stats{}, fmt.Errorf("parsing status key: %w", err)
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return capture.Stats{}, fmt.Errorf("parsing status counter: %w", err)
		}
		stats.ByStatus[code] = count
	}

	return stats, nil
}

// DeleteAll removes every record hash, the index and the counters
func (r *Repository) DeleteAll(ctx context.Context) error {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("listing webhook ids: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, recordKey(id))
	}
	pipe.Del(ctx, indexKey, methodStatsKey, statusStatsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting webhooks: %w", err)
	}

	return nil
}

// Close closes the Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

func (r *Repository) fetchRecords(ctx context.Context, ids []string) ([]capture.Record, error) {
	if len(ids) == 0 {
		return []capture.Record{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, recordKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("fetching webhooks: %w", err)
	}

	records := make([]capture.Record, 0, len(ids))
	for _, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("fetching webhook: %w", err)
		}
		if len(fields) == 0 {
			// Index entry without a hash: treat as missing, same as an
			// unknown id in the SQL backend.
			continue
		}
		rec, err := recordFromHash(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func hashFromRecord(rec capture.Record) (map[string]interface{}, error) {
	headersJSON, err := json.Marshal(rec.Headers)
	if err != nil {
		return nil, fmt.Errorf("marshaling headers: %w", err)
	}

	fields := map[string]interface{}{
		"id":          rec.ID,
		"method":      rec.Method,
		"path_name":   rec.PathName,
		"ip":          rec.IP,
		"status_code": rec.StatusCode,
		"headers":     string(headersJSON),
		"created_at":  rec.CreatedAt.Format(time.RFC3339Nano),
	}

	// Optional fields are stored only when present, so absence
	// round-trips as nil.
	if rec.ContentType != nil {
		fields["content_type"] = *rec.ContentType
	}
	if rec.ContentLength != nil {
		fields["content_length"] = *rec.ContentLength
	}
	if rec.Body != nil {
		fields["body"] = *rec.Body
	}
	if rec.QueryParams != nil {
		queryJSON, err := json.Marshal(rec.QueryParams)
		if err != nil {
			return nil, fmt.Errorf("marshaling query params: %w", err)
		}
		fields["query_params"] = string(queryJSON)
	}

	return fields, nil
}

func recordFromHash(fields map[string]string) (capture.Record, error) {
	rec := capture.Record{
		ID:       fields["id"],
		Method:   fields["method"],
		PathName: fields["path_name"],
		IP:       fields["ip"],
	}

	statusCode, err := strconv.Atoi(fields["status_code"])
	if err != nil {
		return capture.Record{}, fmt.Errorf("parsing status code: %w", err)
	}
	rec.StatusCode = statusCode

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return capture.Record{}, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = createdAt

	if err := json.Unmarshal([]byte(fields["headers"]), &rec.Headers); err != nil {
		return capture.Record{}, fmt.Errorf("unmarshaling headers: %w", err)
	}

	if v, ok := fields["content_type"]; ok {
		rec.ContentType = &v
	}
	if v, ok := fields["content_length"]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return capture.Record{}, fmt.Errorf("parsing content length: %w", err)
		}
		rec.ContentLength = &n
	}
	if v, ok := fields["body"]; ok {
		rec.Body = &v
	}
	if v, ok := fields["query_params"]; ok {
		if err := json.Unmarshal([]byte(v), &rec.QueryParams); err != nil {
			return capture.Record{}, fmt.Errorf("unmarshaling query params: %w", err)
		}
	}

	return rec, nil
}
