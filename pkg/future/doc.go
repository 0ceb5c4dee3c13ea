// Package future is the deferred-computation substrate used by rop and
// rop/async. A Future is resolved once, either with a value or with a
// substrate error (a recovered panic, a rejected promise), and supports
// continuation registration, monadic chaining and blocking waits.
//
// Highlights:
// - Resolved/Failed: already-resolved futures
// - NewPromise: a single-producer handle resolving a Future
// - Go: run a function on an Executor
// - Then/ThenOn/Map: chain continuations
// - Await/Done/Peek/OnResolve: observe resolution
// - Inline/Goroutine/Pool: executors
package future
