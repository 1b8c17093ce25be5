package input

// Handler consumes an intent, returning true to stop propagation
type Handler func(Intent) bool

type subscription struct {
	id      uint64
	handler Handler
}

// Dispatcher routes intents to subscribed handlers, newest first
// Modal layers subscribe on open and unsubscribe on close
type Dispatcher struct {
	subs   []subscription
	nextID uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds h on top of the stack; the returned func removes it and is idempotent
func (d *Dispatcher) Subscribe(h Handler) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, handler: h})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch offers in to handlers from newest to oldest until one consumes it
func (d *Dispatcher) Dispatch(in Intent) bool {
	for i := len(d.subs) - 1; i >= 0; i-- {
		if d.subs[i].handler(in) {
			return true
		}
	}
	return false
}

// Len returns the number of subscribed handlers
func (d *Dispatcher) Len() int { return len(d.subs) }
