// SPDX-License-Identifier: MIT

package source

// Notifier is an embeddable listener registry.
//
// The zero value is ready to use. Listeners are held as non-owning
// references and notified in registration order. Adding the same listener
// twice has no effect. Listeners are compared by identity, so they must be
// comparable values; pointer receivers are the norm.
type Notifier struct {
	listeners []Listener
}

// AddListener appends l unless it is already registered.
// A nil listener is ignored.
func (n *Notifier) AddListener(l Listener) {
	if l == nil {
		return
	}
	for _, have := range n.listeners {
		if have == l {
			return
		}
	}
	n.listeners = append(n.listeners, l)
}

// RemoveListener drops l, preserving the order of the remaining listeners.
func (n *Notifier) RemoveListener(l Listener) {
	for i, have := range n.listeners {
		if have == l {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of registered listeners.
func (n *Notifier) Listeners() int {
	return len(n.listeners)
}

// Notify calls DataChanged(src) on every listener.
// The fan-out runs over a snapshot, so listeners may unsubscribe (or
// subscribe others) while being notified without affecting this round.
func (n *Notifier) Notify(src Source) {
	if len(n.listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		l.DataChanged(src)
	}
}
