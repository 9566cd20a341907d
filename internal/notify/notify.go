// Package notify carries the fire-and-forget "something changed" signal
// that write paths emit for the analytics subscriber. Delivery is
// best-effort, at most once: a failed publish is logged and dropped, and
// no write ever blocks or fails on it.
package notify

// Channel is the single event name subscribers listen on. There is no
// payload contract beyond "re-query".
const Channel = "content-changed"

// Notifier is the signal sink.
type Notifier interface {
	ContentChanged()
}

// Noop discards all signals. Used when no broker is configured.
type Noop struct{}

func (Noop) ContentChanged() {}
