// Package property implements attached property descriptors: named, typed
// value slots defined by one type but stored against instances of another.
//
// A container that needs per-child metadata (a stretch factor, a grid cell,
// a caption) declares a descriptor once and reads or writes it for any child,
// without the child's type declaring a field for it:
//
//	var Flex = property.New(property.Config[Box, int]{
//	    Name:   "flex",
//	    Coerce: func(_ *Box, v int) int { return max(v, 0) },
//	})
//
//	Flex.Set(child, 2)
//	factor := Flex.Get(child)
//
// # Storage
//
// Values live in a [Store], keyed by owner identity. The association is weak:
// the store never keeps an owner alive, and a collected owner's values are
// reclaimed automatically. Every descriptor uses the process-wide
// [DefaultStore] unless given a private one, which tests use for isolation.
//
// # Defaults and Coercion
//
// A slot is unset until the first Get, Set, or Coerce touches it. Get on an
// unset slot computes the default (DefaultFunc wins over Default), stores it,
// and returns it - with no coercion, comparison, or notification. Set runs
// the candidate value through Coerce, commits it unconditionally, and only
// then decides whether anyone needs to hear about it.
//
// # Change Notification
//
// When a descriptor has a Changed callback, a [Signal], or the owner
// implements [Observer], a Set or Coerce that produces a different value
// (per Equal, or Go equality when Equal is nil) first runs Changed to
// completion, then emits a [Change]. When none of those are present the
// comparison is skipped entirely.
//
// All operations are synchronous and single-threaded; callbacks may reenter
// the descriptor and will observe the already-committed new value.
package property
