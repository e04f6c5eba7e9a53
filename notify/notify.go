// Package notify implements the user-facing notification channel: an ordered
// list of messages that self-expire after a TTL and can be dismissed by id.
package notify

import (
	"sync"
	"time"

	"dokanbook/internal/xid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindDelete  Kind = "delete"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

const DefaultTTL = 4 * time.Second

// Bus is fire-and-forget: multiple notifications coexist, there is no
// de-duplication, and expiry never touches ledger state.
type Bus struct {
	mu      sync.Mutex
	ttl     time.Duration
	items   []Notification
	timers  map[string]*time.Timer
	subs    map[int]func(Notification)
	nextSub int
	closed  bool
}

func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Bus{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
		subs:   make(map[int]func(Notification)),
	}
}

// Show appends a notification, newest first, and schedules its removal after
// the bus TTL.
func (b *Bus) Show(message string, kind Kind) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	n := Notification{
		ID:        xid.New("ntf"),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	b.items = append([]Notification{n}, b.items...)
	b.timers[n.ID] = time.AfterFunc(b.ttl, func() { b.Remove(n.ID) })

	observers := make([]func(Notification), 0, len(b.subs))
	for _, fn := range b.subs {
		observers = append(observers, fn)
	}
	b.mu.Unlock()

	for _, fn := range observers {
		fn(n)
	}
}

// Remove dismisses a notification immediately. Unknown ids are a no-op.
func (b *Bus) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if timer, exists := b.timers[id]; exists {
		timer.Stop()
		delete(b.timers, id)
	}
	for i, n := range b.items {
		if n.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Active returns the notifications that have not yet expired, newest first.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}

// Subscribe registers an observer invoked for every shown notification. The
// returned function cancels the subscription.
func (b *Bus) Subscribe(fn func(Notification)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Close stops all pending expiry timers and drops the remaining
// notifications. Show becomes a no-op afterwards.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.items = nil
	b.closed = true
}
