package postgresstore_test

import (
	"testing"
	"time"

	"maragu.dev/is"

	"github.com/pricenotifier/web/postgresstore"
	"github.com/pricenotifier/web/postgrestest"
)

func TestNew(t *testing.T) {
	t.Run("should commit and find sessions", func(t *testing.T) {
		h := postgrestest.NewHelper(t)

		store, close, err := postgresstore.New(t.Context(), h, h.URL())
		is.NotError(t, err)
		defer close()

		err = store.Commit("abc", []byte("data"), time.Now().Add(time.Hour))
		is.NotError(t, err)

		b, found, err := store.Find("abc")
		is.NotError(t, err)
		is.True(t, found)
		is.Equal(t, "data", string(b))
	})
}
