//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/* Test helpers for PostgreSQL integration tests with testcontainers.
 * A real postgres container is started per test; run with
 * go test -tags=integration ./capture/postgres/...
 */

const (
	defaultDatabase = "testdb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// SetupRepository starts a PostgreSQL container, creates the webhooks
// table and returns a ready repository plus a cleanup function.
func SetupRepository(t *testing.T, ctx context.Context) (*Repository, func()) {
	t.Helper()

	container, err := pgcontainer.Run(ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase(defaultDatabase),
		pgcontainer.WithUsername(defaultUser),
		pgcontainer.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	repo, err := NewRepository(connStr)
	require.NoError(t, err, "failed to open repository")

	require.NoError(t, repo.CreateTable(ctx))

	cleanup := func() {
		_ = repo.Close(ctx)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return repo, cleanup
}
