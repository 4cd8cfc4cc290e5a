package sqlitestore_test

import (
	"testing"
	"time"

	"maragu.dev/is"

	"github.com/pricenotifier/web/sqlitestore"
	"github.com/pricenotifier/web/sqlitetest"
)

func TestNew(t *testing.T) {
	t.Run("should commit and find sessions", func(t *testing.T) {
		h := sqlitetest.NewHelper(t)

		store, err := sqlitestore.New(t.Context(), h)
		is.NotError(t, err)

		err = store.Commit("abc", []byte("data"), time.Now().Add(time.Hour))
		is.NotError(t, err)

		b, found, err := store.Find("abc")
		is.NotError(t, err)
		is.True(t, found)
		is.Equal(t, "data", string(b))

		var count int
		err = h.Get(t.Context(), &count, `select count(*) from sessions`)
		is.NotError(t, err)
		is.Equal(t, 1, count)
	})

	t.Run("should not find expired sessions", func(t *testing.T) {
		h := sqlitetest.NewHelper(t)

		store, err := sqlitestore.New(t.Context(), h)
		is.NotError(t, err)

		err = store.Commit("abc", []byte("data"), time.Now().Add(-time.Hour))
		is.NotError(t, err)

		_, found, err := store.Find("abc")
		is.NotError(t, err)
		is.True(t, !found)
	})
}
