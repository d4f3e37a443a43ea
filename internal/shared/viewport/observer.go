// Package viewport classifies client viewports into device classes.
package viewport

import (
	"sync"
)

// Breakpoint is the first width, in logical pixels, classified as desktop.
const Breakpoint = 768

// Class is the device class derived from the viewport width.
type Class int

const (
	// Desktop is also the class reported before any measurement arrives.
	Desktop Class = iota
	Mobile
)

// String returns the lower-case class name.
func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify maps a width to its class: widths below Breakpoint are mobile.
func Classify(width int) Class {
	if width < Breakpoint {
		return Mobile
	}
	return Desktop
}

// Snapshot is the persisted form of an Observer.
type Snapshot struct {
	Width    int  `json:"width"`
	Measured bool `json:"measured"`
}

// Observer tracks the latest viewport measurement and notifies subscribers
// when the class changes.
type Observer struct {
	mu       sync.Mutex
	width    int
	measured bool
	class    Class
	nextID   int
	subs     map[int]func(from, to Class)
}

// NewObserver returns an observer in the Desktop class with no measurement.
func NewObserver() *Observer {
	return &Observer{class: Desktop, subs: map[int]func(from, to Class){}}
}

// Restore rebuilds an observer from a snapshot.
func Restore(s Snapshot) *Observer {
	o := NewObserver()
	if s.Measured && s.Width > 0 {
		o.width = s.Width
		o.measured = true
		o.class = Classify(s.Width)
	}
	return o
}

// Observe records a measurement. Non-positive widths are ignored.
// Subscribers are called synchronously, outside the lock, only when the class changes.
func (o *Observer) Observe(width int) Class {
	if width <= 0 {
		return o.Class()
	}

	o.mu.Lock()
	from := o.class
	to := Classify(width)
	o.width = width
	o.measured = true
	o.class = to
	var notify []func(from, to Class)
	if from != to {
		notify = make([]func(from, to Class), 0, len(o.subs))
		for _, fn := range o.subs {
			notify = append(notify, fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range notify {
		fn(from, to)
	}
	return to
}

// Subscribe registers fn for class transitions and returns a func that removes it.
func (o *Observer) Subscribe(fn func(from, to Class)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}

// Class returns the current class.
func (o *Observer) Class() Class {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.class
}

// Measured reports whether at least one measurement has been observed.
func (o *Observer) Measured() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.measured
}

// Snapshot returns the persisted form of the observer.
func (o *Observer) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{Width: o.width, Measured: o.measured}
}
