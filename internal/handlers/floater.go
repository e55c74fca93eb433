package handlers

import (
	"sync"
	"time"
)

// Floater is a short-lived "+N" indicator shown after a tap. It is purely
// presentational: a late or missed removal can never affect point totals.
type Floater struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`

	expiresAt time.Time
}

// Floaters hands out floaters with monotonically increasing IDs and expires
// them after a fixed lifetime. Expiry happens on read, so no timer is needed.
type Floaters struct {
	mu       sync.Mutex
	nextID   int64
	lifetime time.Duration
	entries  []Floater
}

// NewFloaters creates a floater registry with the given lifetime.
func NewFloaters(lifetime time.Duration) *Floaters {
	return &Floaters{lifetime: lifetime}
}

// Add registers a new floater and returns it.
func (f *Floaters) Add(text string) Floater {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	fl := Floater{
		ID:        f.nextID,
		Text:      text,
		expiresAt: time.Now().Add(f.lifetime),
	}
	f.entries = append(f.entries, fl)
	return fl
}

// Active returns the floaters that have not yet expired, pruning the rest.
func (f *Floaters) Active() []Floater {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	kept := f.entries[:0]
	for _, fl := range f.entries {
		if fl.expiresAt.After(now) {
			kept = append(kept, fl)
		}
	}
	f.entries = kept

	out := make([]Floater, len(kept))
	copy(out, kept)
	return out
}
