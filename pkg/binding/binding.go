// Package binding provides two-way, listenable values shared between a widget
// and the code that owns its state.
//
// A [Value] is created and owned by the embedding application and handed to a
// widget by pointer. Reads always observe the latest value; writes notify every
// listener registered with AddListener. Values satisfy the listenable contract
// used by [core.UseListenable], so a widget state can subscribe directly:
//
//	func (s *myState) InitState() {
//	    w := s.Element().Widget().(MyWidget)
//	    core.UseListenable(s, w.Editing)
//	}
//
// Reads, writes and subscriptions are safe for concurrent use, and Update is
// atomic. Listeners run on the goroutine that made the change, though, so a
// value watched by a widget must change on the UI thread. Like drift's
// Managed state, write it from background goroutines through drift.Dispatch.
package binding

import "sync"

// Value holds a caller-owned value and notifies listeners when it changes.
//
// Setting a value equal to the current one is not a change and does not
// notify. Use Notify to force listeners to run.
type Value[T comparable] struct {
	value          T
	listeners      map[int]func()
	nextListenerID int
	mu             sync.RWMutex
}

// New creates a binding holding initial.
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{
		value:     initial,
		listeners: make(map[int]func()),
	}
}

// Value returns the current value. A nil binding reads as the zero value.
func (v *Value[T]) Value() T {
	if v == nil {
		var zero T
		return zero
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies listeners if it differs from the current one.
// Reports whether the value changed.
func (v *Value[T]) Set(value T) bool {
	v.mu.Lock()
	if v.value == value {
		v.mu.Unlock()
		return false
	}
	v.value = value
	v.mu.Unlock()
	v.notifyListeners()
	return true
}

// Update atomically replaces the value with transform applied to it and
// notifies listeners if the result differs. Reports whether the value changed.
// transform runs under the binding's lock and must not use v.
func (v *Value[T]) Update(transform func(T) T) bool {
	v.mu.Lock()
	next := transform(v.value)
	if next == v.value {
		v.mu.Unlock()
		return false
	}
	v.value = next
	v.mu.Unlock()
	v.notifyListeners()
	return true
}

// Notify runs every listener without changing the value.
func (v *Value[T]) Notify() {
	v.notifyListeners()
}

// AddListener adds a callback that is called when the value changes.
// Returns an unsubscribe function. On a nil binding it is a no-op.
func (v *Value[T]) AddListener(fn func()) func() {
	if v == nil || fn == nil {
		return func() {}
	}
	v.mu.Lock()
	if v.listeners == nil {
		v.listeners = make(map[int]func())
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// ListenerCount returns the number of registered listeners.
func (v *Value[T]) ListenerCount() int {
	if v == nil {
		return 0
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.listeners)
}

func (v *Value[T]) notifyListeners() {
	v.mu.RLock()
	listeners := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		listeners = append(listeners, fn)
	}
	v.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
