package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const contextClientIDKey = contextKey("clientID")

// contextKey is a custom type to be used for storing keys in a [context.Context].
type contextKey string

// WithClientID returns a copy of ctx carrying the browser's client ID.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextClientIDKey, id)
}

// ClientIDFromContext, which is empty if not set.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextClientIDKey).(string)
	return id
}

// Hub keeps one [Surface] per browser, keyed by client ID.
type Hub struct {
	clock         clockwork.Clock
	delay         time.Duration
	log           *slog.Logger
	mu            sync.Mutex
	pruneInterval time.Duration
	surfaces      map[string]*hubEntry
}

type hubEntry struct {
	surface *Surface
	used    time.Time
}

type NewHubOptions struct {
	Clock         clockwork.Clock
	Delay         time.Duration
	Log           *slog.Logger
	PruneInterval time.Duration
}

// NewHub with the given options.
// If no logger is provided, logs are discarded.
func NewHub(opts NewHubOptions) *Hub {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	if opts.PruneInterval <= 0 {
		opts.PruneInterval = time.Minute
	}

	return &Hub{
		clock:         opts.Clock,
		delay:         opts.Delay,
		log:           opts.Log,
		pruneInterval: opts.PruneInterval,
		surfaces:      map[string]*hubEntry{},
	}
}

// Get the surface for the client ID, creating it if needed.
// The surface counts as used, and is kept for at least the prune interval.
func (h *Hub) Get(clientID string) *Surface {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.surfaces[clientID]
	if !ok {
		e = &hubEntry{surface: NewSurface(NewSurfaceOptions{Clock: h.clock, Delay: h.delay})}
		h.surfaces[clientID] = e
	}
	e.used = h.clock.Now()
	return e.surface
}

// FromContext gets the surface for the client ID in ctx, or nil if there is none.
func (h *Hub) FromContext(ctx context.Context) *Surface {
	id := ClientIDFromContext(ctx)
	if id == "" {
		return nil
	}
	return h.Get(id)
}

// ShowError on the surface of the client in ctx.
// Without a client ID in ctx, there's nobody to show it to, and the message is dropped.
func (h *Hub) ShowError(ctx context.Context, message string) {
	s := h.FromContext(ctx)
	if s == nil {
		h.log.Debug("Dropping error message without client", "message", message)
		return
	}
	s.ShowError(message)
}

// Prune surfaces that have no message and haven't been used for the prune interval,
// and return how many were removed.
// Surfaces handed out recently are kept even when empty, since a message may be on its way.
func (h *Hub) Prune() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	var removed int
	for id, e := range h.surfaces {
		if h.clock.Since(e.used) < h.pruneInterval {
			continue
		}
		if _, ok := e.surface.Message(); !ok {
			delete(h.surfaces, id)
			removed++
		}
	}
	return removed
}

// Len is the number of surfaces currently held.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.surfaces)
}

// Start pruning on an interval until ctx is done. It blocks.
func (h *Hub) Start(ctx context.Context) error {
	ticker := h.clock.NewTicker(h.pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if removed := h.Prune(); removed > 0 {
				h.log.Debug("Pruned notification surfaces", "removed", removed)
			}
		}
	}
}
