// Package rop holds Result[T, E], a value that is either a Success carrying
// T or a Failure carrying E. Payloads are reached through Fold or Match,
// never through an accessor that could be called on the wrong variant.
//
// FlatMapAsync is the bridge into asynchronous chains built on package
// future: a Success hands its value to the next step, a Failure skips it.
package rop
