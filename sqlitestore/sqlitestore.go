// Package sqlitestore keeps browser sessions in SQLite.
package sqlitestore

import (
	"context"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"maragu.dev/errors"

	"github.com/pricenotifier/web/sql"
)

// New session store in the database of h, after migrating it.
// Expired sessions are cleaned up in the background every five minutes.
func New(ctx context.Context, h *sql.Helper) (scs.Store, error) {
	if h.Flavor() != sql.FlavorSQLite {
		return nil, errors.Newf("sqlite store needs a sqlite database, got %v", h.Flavor())
	}

	if err := h.MigrateUp(ctx); err != nil {
		return nil, err
	}
	return sqlite3store.New(h.DB.DB), nil
}
