// Package postgresstore keeps browser sessions in PostgreSQL.
package postgresstore

import (
	"context"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"maragu.dev/errors"

	"github.com/pricenotifier/web/sql"
)

// New session store over a connection pool to databaseURL, after migrating the database of h.
// Call the returned function to close the pool.
func New(ctx context.Context, h *sql.Helper, databaseURL string) (scs.Store, func(), error) {
	if h.Flavor() != sql.FlavorPostgreSQL {
		return nil, nil, errors.Newf("postgres store needs a postgres database, got %v", h.Flavor())
	}

	if err := h.MigrateUp(ctx); err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error creating database pool")
	}
	return pgxstore.New(pool), pool.Close, nil
}
