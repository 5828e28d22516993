package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newspulse/api/internal/database/postgres"
	platformconfig "github.com/newspulse/api/internal/platform/config"
)

// SetupDB connects to the test database and resets its schema from the
// migration files, returning a client scoped to the test. Callers gate
// themselves on RUN_DB_TESTS=1; SetupDB skips the test when the database is
// unreachable so a missing local postgres never fails the suite.
func SetupDB(t *testing.T) *postgres.Client {
	t.Helper()

	cfg := &platformconfig.PostgresConfig{
		Host:           envOr("POSTGRES_HOST", "localhost"),
		Port:           envIntOr("POSTGRES_PORT", 5432),
		Username:       envOr("POSTGRES_USERNAME", "postgres"),
		Password:       os.Getenv("POSTGRES_PASSWORD"),
		Database:       envOr("POSTGRES_TEST_DATABASE", "newspulse_test"),
		SSLMode:        envOr("POSTGRES_SSL_MODE", "disable"),
		ConnectTimeout: 5,
	}

	client, err := postgres.NewClient(context.Background(), cfg)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	applyMigration(t, client, "0001_init.down.sql")
	applyMigration(t, client, "0001_init.up.sql")
	return client
}

func applyMigration(t *testing.T, client *postgres.Client, name string) {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "resolve migrations directory")

	path := filepath.Join(filepath.Dir(file), "..", "..", "migrations", name)
	stmts, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", name)

	_, err = client.DB().Exec(string(stmts))
	require.NoError(t, err, "apply migration %s", name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
