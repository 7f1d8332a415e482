//go:build integration

package kwargs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

// setupPostgresContainer starts an ephemeral PostgreSQL container and opens a
// migrated catalog against it.
func setupPostgresContainer(t *testing.T) (*PostgresCatalog, string) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("kwargs_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	catalog, err := NewPostgresCatalog(PostgresConfig{
		ConnectionString: connStr,
		AutoMigrate:      true,
		QueryTimeout:     30 * time.Second,
		Logger:           zaptest.NewLogger(t),
	})
	require.NoError(t, err, "failed to create postgres catalog")

	return catalog, connStr
}

func TestPostgresCatalog_E2E(t *testing.T) {
	catalog, connStr := setupPostgresContainer(t)
	ctx := context.Background()

	t.Run("schema version", func(t *testing.T) {
		version, err := catalog.CurrentSchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)

		// Re-running is a no-op
		require.NoError(t, catalog.RunMigrations(ctx))
		version, err = catalog.CurrentSchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("migrations on a single connection", func(t *testing.T) {
		single, err := NewPostgresCatalog(PostgresConfig{
			ConnectionString: connStr,
			TablePrefix:      "single_",
			MaxOpenConns:     1,
			QueryTimeout:     30 * time.Second,
		})
		require.NoError(t, err)
		defer single.Close()

		require.NoError(t, single.RunMigrations(ctx))
		require.NoError(t, single.RunMigrations(ctx))
		version, err := single.CurrentSchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("put and get", func(t *testing.T) {
		tmpl := &StoredTemplate{
			Name:        "greeting",
			Source:      "Hello, {name}!",
			Names:       []string{"name", "title"},
			Description: "simple greeting",
		}
		require.NoError(t, catalog.Put(ctx, tmpl))
		assert.False(t, tmpl.CreatedAt.IsZero())

		got, err := catalog.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "Hello, {name}!", got.Source)
		assert.Equal(t, []string{"name", "title"}, got.Names)
		assert.Equal(t, "simple greeting", got.Description)
	})

	t.Run("upsert keeps creation time", func(t *testing.T) {
		first := &StoredTemplate{Name: "upsert", Source: "{a}", Names: []string{"a"}}
		require.NoError(t, catalog.Put(ctx, first))

		second := &StoredTemplate{Name: "upsert", Source: "{a}{a}", Names: []string{"a"}}
		require.NoError(t, catalog.Put(ctx, second))
		assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

		got, err := catalog.Get(ctx, "upsert")
		require.NoError(t, err)
		assert.Equal(t, "{a}{a}", got.Source)
	})

	t.Run("empty names", func(t *testing.T) {
		require.NoError(t, catalog.Put(ctx, &StoredTemplate{Name: "static", Source: "no placeholders"}))

		got, err := catalog.Get(ctx, "static")
		require.NoError(t, err)
		assert.Empty(t, got.Names)
	})

	t.Run("list and delete", func(t *testing.T) {
		names, err := catalog.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"greeting", "static", "upsert"}, names)

		require.NoError(t, catalog.Delete(ctx, "static"))
		err = catalog.Delete(ctx, "static")
		assert.True(t, IsTemplateNotFound(err))

		_, err = catalog.Get(ctx, "static")
		assert.True(t, IsTemplateNotFound(err))
	})

	t.Run("library render", func(t *testing.T) {
		lib := NewLibrary(nil, catalog)
		require.NoError(t, lib.Register(ctx, "pair", "{b}/{a}", "a", "b"))

		out, err := lib.Render(ctx, "pair", MustMake("a, b", 1, 2))
		require.NoError(t, err)
		assert.Equal(t, "2/1", out)
	})

	t.Run("driver open", func(t *testing.T) {
		opened, err := OpenCatalog(CatalogDriverNamePostgres, connStr)
		require.NoError(t, err)
		defer opened.Close()

		names, err := opened.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "greeting")
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, catalog.Close())
		_, err := catalog.Get(ctx, "greeting")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgCatalogClosed)
		assert.Error(t, catalog.Close())
	})
}
