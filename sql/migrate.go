package sql

import (
	"context"
	"embed"
	"io/fs"

	"maragu.dev/errors"
	"maragu.dev/migrate"
)

//go:embed migrations
var migrations embed.FS

// MigrateUp to the latest version for the database flavor.
func (h *Helper) MigrateUp(ctx context.Context) error {
	fsys, err := h.migrations()
	if err != nil {
		return err
	}

	h.log.Info("Migrating database up", "flavor", h.flavor)
	if err := migrate.Up(ctx, h.DB.DB, fsys); err != nil {
		return errors.Wrap(err, "error migrating up")
	}
	return nil
}

// MigrateDown all the way.
func (h *Helper) MigrateDown(ctx context.Context) error {
	fsys, err := h.migrations()
	if err != nil {
		return err
	}

	h.log.Info("Migrating database down", "flavor", h.flavor)
	if err := migrate.Down(ctx, h.DB.DB, fsys); err != nil {
		return errors.Wrap(err, "error migrating down")
	}
	return nil
}

func (h *Helper) migrations() (fs.FS, error) {
	if h.DB == nil {
		return nil, errors.Newf("not connected")
	}

	fsys, err := fs.Sub(migrations, "migrations/"+string(h.flavor))
	if err != nil {
		return nil, errors.Wrap(err, "error getting migrations for %v", h.flavor)
	}
	return fsys, nil
}
