package sql

import (
	"context"
)

// CountActiveSessions that have not expired yet.
func (h *Helper) CountActiveSessions(ctx context.Context) (int, error) {
	query := `select count(*) from sessions where expiry > now()`
	if h.flavor == FlavorSQLite {
		query = `select count(*) from sessions where expiry > julianday('now')`
	}

	var count int
	err := h.Get(ctx, &count, query)
	return count, err
}
