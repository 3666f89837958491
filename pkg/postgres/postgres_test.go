package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/migrations"
	"github.com/turnthepage/library-service/pkg/postgres"
)

func TestDB_DSN(t *testing.T) {
	t.Parallel()
	db := postgres.DB{Host: "db", Port: "5432", Username: "library", Password: "p@ss word", NameDB: "library", SSLMode: "disable"}
	require.Equal(t, "postgres://library:p%40ss%20word@db:5432/library?sslmode=disable", db.DSN())
}

// Needs a reachable postgres; DB_HOST selects it.
func TestNewPostgresDB_Migrates(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST is not set")
	}
	var cfg postgres.DB
	require.NoError(t, envconfig.Process("", &cfg))

	ctx := context.Background()
	pool, err := postgres.NewPostgresDB(ctx, &cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	defer pool.Close()

	for _, table := range []string{"books", "readers", "lendings", "audit_logs"} {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `select to_regclass($1) is not null`, table).Scan(&exists))
		require.True(t, exists, table)
	}

	// applying again is a no-op
	pool2, err := postgres.NewPostgresDB(ctx, &cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	pool2.Close()
}
