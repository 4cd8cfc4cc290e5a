// Package notify holds the transient error message shown to a user.
package notify

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pricenotifier/web/state"
)

// DefaultDelay before a shown message is cleared automatically.
const DefaultDelay = 5 * time.Second

// Surface holds at most one message at a time.
// Every [Surface.ShowError] schedules its own clear after the delay, and earlier timers are not cancelled,
// so a message shown shortly after another can be cleared by the first message's timer.
type Surface struct {
	clock   clockwork.Clock
	delay   time.Duration
	message *state.Value[*string]
}

type NewSurfaceOptions struct {
	Clock clockwork.Clock
	Delay time.Duration
}

func NewSurface(opts NewSurfaceOptions) *Surface {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}

	return &Surface{
		clock:   opts.Clock,
		delay:   opts.Delay,
		message: state.NewValue[*string](nil),
	}
}

// ShowError replaces the current message with message, and clears it after the delay.
func (s *Surface) ShowError(message string) {
	s.message.Set(&message)
	s.clock.AfterFunc(s.delay, s.Clear)
}

// Clear the message. Clearing an absent message does nothing.
func (s *Surface) Clear() {
	if s.message.Get() == nil {
		return
	}
	s.message.Set(nil)
}

// Message currently shown, if any.
func (s *Surface) Message() (string, bool) {
	m := s.message.Get()
	if m == nil {
		return "", false
	}
	return *m, true
}

// Subscribe f to message changes. ok is false when the message was cleared.
func (s *Surface) Subscribe(f func(message string, ok bool)) func() {
	return s.message.Subscribe(func(m *string) {
		if m == nil {
			f("", false)
			return
		}
		f(*m, true)
	})
}
