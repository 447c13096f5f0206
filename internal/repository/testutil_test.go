package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/opsfin/invoice-engine/gen/ent"
)

// newTestClient opens an in-memory SQLite database and migrates the schema.
// Postgres-only details (numeric precision, partial indexes) degrade to their
// SQLite equivalents, which is close enough for repository behavior tests.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func testLogger() *slog.Logger {
	return slog.Default()
}
