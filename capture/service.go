package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// Listing bounds. The endpoint rejects out-of-range limits before they
// reach the store; repositories additionally clamp defensively.
const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 20
)

// UseCase defines the business operations over captured webhooks
type UseCase interface {
	Capture(ctx context.Context, rec Record) (string, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, limit int, cursor string) (Page, error)
	Reset(ctx context.Context) error
}

type Service struct {
	Repo Repository
}

// NewService creates a new capture service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// Capture assigns a fresh id and creation timestamp to the normalized
// record and persists it. UUIDv7 ids are time-ordered, which is what
// makes id-boundary cursor pagination equivalent to reverse-chronological
// order.
func (s *Service) Capture(ctx context.Context, rec Record) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating webhook id: %w", err)
	}
	rec.ID = id.String()
	rec.CreatedAt = time.Now().UTC()

	stored, err := s.Repo.Insert(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("storing webhook: %w", err)
	}
	return stored, nil
}

// Get returns the full record for an id
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	rec, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Record{}, fmt.Errorf("selecting webhook: %w", err)
	}
	return rec, nil
}

// List returns one page of records, newest first
func (s *Service) List(ctx context.Context, limit int, cursor string) (Page, error) {
	if limit < MinLimit || limit > MaxLimit {
		return Page{}, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidLimit, limit, MinLimit, MaxLimit)
	}
	page, err := s.Repo.SelectPage(ctx, limit, cursor)
	if err != nil {
		return Page{}, fmt.Errorf("selecting webhooks page: %w", err)
	}
	return page, nil
}

// Reset clears the store. Used by the seeding utility, never by the
// request path.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing webhooks: %w", err)
	}
	return nil
}
