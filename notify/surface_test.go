package notify_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"maragu.dev/is"

	"github.com/pricenotifier/web/notify"
)

func TestSurface_ShowError(t *testing.T) {
	t.Run("should show the message immediately", func(t *testing.T) {
		s, _ := newSurface()

		s.ShowError("X")

		message, ok := s.Message()
		is.True(t, ok)
		is.Equal(t, "X", message)
	})

	t.Run("should clear the message after 5 seconds", func(t *testing.T) {
		s, clock := newSurface()

		s.ShowError("X")

		clock.Advance(4999 * time.Millisecond)
		message, ok := s.Message()
		is.True(t, ok)
		is.Equal(t, "X", message)

		clock.Advance(time.Millisecond)
		waitForNoMessage(t, s)
	})

	t.Run("should replace the current message", func(t *testing.T) {
		s, _ := newSurface()

		s.ShowError("first")
		s.ShowError("second")

		message, ok := s.Message()
		is.True(t, ok)
		is.Equal(t, "second", message)
	})

	t.Run("should let an earlier timer clear a later message", func(t *testing.T) {
		s, clock := newSurface()

		s.ShowError("first")
		clock.Advance(time.Second)
		s.ShowError("second")

		clock.Advance(4 * time.Second)
		waitForNoMessage(t, s)

		clock.Advance(time.Second)
		waitForNoMessage(t, s)
	})

	t.Run("should notify subscribers", func(t *testing.T) {
		s, clock := newSurface()

		changes := make(chan bool, 10)
		s.Subscribe(func(message string, ok bool) {
			changes <- ok
		})

		s.ShowError("X")
		is.True(t, <-changes)

		clock.Advance(notify.DefaultDelay)
		select {
		case ok := <-changes:
			is.True(t, !ok)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for clear")
		}
	})
}

func TestSurface_Clear(t *testing.T) {
	t.Run("should clear the message regardless of pending timers", func(t *testing.T) {
		s, _ := newSurface()

		s.ShowError("X")
		s.Clear()

		_, ok := s.Message()
		is.True(t, !ok)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		s, _ := newSurface()

		s.Clear()
		s.Clear()

		_, ok := s.Message()
		is.True(t, !ok)
	})
}

func newSurface() (*notify.Surface, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	return notify.NewSurface(notify.NewSurfaceOptions{Clock: clock}), clock
}

// waitForNoMessage polls, because fake clock timers may run their functions in a separate goroutine.
func waitForNoMessage(t *testing.T, s *notify.Surface) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := s.Message(); !ok {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("message was not cleared")
}
