package property

import (
	"reflect"
	"sync/atomic"
)

// lastID mints process-unique descriptor ids. Ids are never reused, so two
// independently constructed descriptors can never collide in a value table.
var lastID atomic.Uint64

// Key identifies a descriptor without reference to its type parameters.
// Every [Descriptor] is a Key; a [Change] carries one so listeners can tell
// which property fired.
type Key interface {
	ID() uint64
	Name() string
}

// Config describes one attached property. All fields are optional except
// that a Name is strongly recommended for debuggability; the zero Config is
// a valid plain value slot.
type Config[O, V any] struct {
	// Name is the human-readable property name carried in change payloads.
	Name string

	// Default is the value an unset slot reports. Ignored when DefaultFunc
	// is set. When neither is set the default is the zero value of V.
	Default V

	// DefaultFunc computes a per-owner default. It runs every time an unset
	// slot needs a value; the result is only written to the table by Get,
	// never by the comparison baseline of Set or Coerce.
	DefaultFunc func(owner *O) V

	// Coerce normalizes a candidate value before it is stored.
	Coerce func(owner *O, value V) V

	// Equal reports whether two values are equivalent for change detection.
	// When nil, Go equality on the boxed values is used; values whose
	// dynamic type is not comparable are treated as always different.
	Equal func(a, b V) bool

	// Changed runs after a different value was committed, before any
	// notification is emitted.
	Changed func(owner *O, oldValue, newValue V)

	// Signal, when set, receives a [Change] for every detected change.
	// When nil, owners implementing [Observer] are notified instead.
	Signal *Signal

	// Store overrides the storage backend. Nil means [DefaultStore].
	Store *Store
}

// Descriptor is one attached property, shared across every owner of type O.
// It holds configuration only; all per-owner state lives in its [Store].
// Construct with [New] and share the result, typically as a package-level
// variable next to the container that defines the property.
type Descriptor[O, V any] struct {
	id      uint64
	name    string
	store   *Store
	def     V
	defFunc func(*O) V
	coerce  func(*O, V) V
	equal   func(V, V) bool
	changed func(*O, V, V)
	signal  *Signal
}

// New creates a descriptor with a fresh process-unique identity.
func New[O, V any](cfg Config[O, V]) *Descriptor[O, V] {
	store := cfg.Store
	if store == nil {
		store = defaultStore
	}
	return &Descriptor[O, V]{
		id:      lastID.Add(1),
		name:    cfg.Name,
		store:   store,
		def:     cfg.Default,
		defFunc: cfg.DefaultFunc,
		coerce:  cfg.Coerce,
		equal:   cfg.Equal,
		changed: cfg.Changed,
		signal:  cfg.Signal,
	}
}

// ID returns the descriptor's process-unique identity.
func (d *Descriptor[O, V]) ID() uint64 { return d.id }

// Name returns the declared property name. May be empty.
func (d *Descriptor[O, V]) Name() string { return d.name }

// Get returns owner's value for this property.
//
// An unset slot computes the default (DefaultFunc wins over Default), stores
// it, and returns it. Materializing a default is not a change: Get never
// runs Coerce, Equal, Changed, or any notification.
func (d *Descriptor[O, V]) Get(owner *O) V {
	t := lookupTable(d.store, owner)
	if stored, ok := t.values[d.id]; ok {
		return stored.(V)
	}
	value := d.defaultFor(owner)
	t.values[d.id] = value
	return value
}

// Set coerces value and commits it to owner's slot unconditionally, then
// runs change detection.
//
// The old value for comparison is the stored value, or the computed default
// when the slot is unset. In the unset case the default is used only as the
// comparison baseline and is not written first, so a DefaultFunc with side
// effects runs here but its result is never stored.
//
// When the descriptor has a Changed callback, a Signal, or the owner
// implements [Observer]: Equal runs exactly once, and if the values differ,
// Changed completes before the notification is emitted. With none of those
// configured the comparison is skipped entirely.
func (d *Descriptor[O, V]) Set(owner *O, value V) {
	t := lookupTable(d.store, owner)
	oldValue := d.currentValue(t, owner)
	if d.coerce != nil {
		value = d.coerce(owner, value)
	}
	t.values[d.id] = value
	d.notify(owner, oldValue, value)
}

// Coerce re-applies the coercion function to owner's current value (or its
// default when unset), as if Set had been called with that value. Containers
// call this when external state referenced by the coercion - a shared bound,
// an available extent - has moved and stored values must be re-validated.
// Change detection follows the same rules as Set.
func (d *Descriptor[O, V]) Coerce(owner *O) {
	t := lookupTable(d.store, owner)
	oldValue := d.currentValue(t, owner)
	value := oldValue
	if d.coerce != nil {
		value = d.coerce(owner, oldValue)
	}
	t.values[d.id] = value
	d.notify(owner, oldValue, value)
}

func (d *Descriptor[O, V]) currentValue(t *table, owner *O) V {
	if stored, ok := t.values[d.id]; ok {
		return stored.(V)
	}
	return d.defaultFor(owner)
}

func (d *Descriptor[O, V]) defaultFor(owner *O) V {
	if d.defFunc != nil {
		return d.defFunc(owner)
	}
	return d.def
}

// notify implements the ordering contract: gate, compare once, Changed,
// then a single notification (Signal wins over the owner's Observer).
// The table is already committed, so reentrant reads see the new value.
func (d *Descriptor[O, V]) notify(owner *O, oldValue, newValue V) {
	observer, _ := any(owner).(Observer)
	if d.changed == nil && d.signal == nil && observer == nil {
		return
	}
	if d.sameValue(oldValue, newValue) {
		return
	}
	if d.changed != nil {
		d.changed(owner, oldValue, newValue)
	}
	if d.signal == nil && observer == nil {
		return
	}
	change := Change{
		Descriptor: d,
		Owner:      owner,
		Old:        oldValue,
		New:        newValue,
	}
	if d.signal != nil {
		d.signal.emit(change)
		return
	}
	observer.PropertyChanged(change)
}

func (d *Descriptor[O, V]) sameValue(a, b V) bool {
	if d.equal != nil {
		return d.equal(a, b)
	}
	return boxedEqual(a, b)
}

// boxedEqual compares two values with Go equality. Values that cannot be
// compared - a non-comparable dynamic type, or a comparable struct type
// wrapping a slice/map/func in an interface field - report false rather
// than panicking, erring toward notification. The check is value-level
// because type-level comparability is not enough: == panics at runtime on
// such wrapped values even though their type is comparable.
func boxedEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
