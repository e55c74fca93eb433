package models

import "iter"

// Event records a single tap on an activity button.
type Event struct {
	Date   string `json:"date"` // day bucket key, YYYY-MM-DD
	Label  string `json:"label"`
	Points int    `json:"pts"`
}

// ActionLog is the append-only sequence of earn events. Events are never
// mutated; the only deletion path is RemoveDay, used by clear-today.
type ActionLog []Event

// Append adds an event to the end of the log. No deduplication, no cap.
func (l *ActionLog) Append(e Event) {
	*l = append(*l, e)
}

// EventsSince yields the events whose day key is >= cutoff. Day keys sort
// lexicographically in date order, so no parsing is needed. The sequence is
// restartable: each range loop walks the log from the start.
func (l ActionLog) EventsSince(cutoff string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range l {
			if e.Date < cutoff {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// RemoveDay deletes all events recorded under the given day key.
func (l *ActionLog) RemoveDay(dayKey string) {
	kept := (*l)[:0]
	for _, e := range *l {
		if e.Date != dayKey {
			kept = append(kept, e)
		}
	}
	*l = kept
}
