// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate/Ensure/Recover: validation, side effects and fallbacks
// - Async: continue the chain asynchronously with package async
// - Finally: collapse the chain into a final value via handlers
package chain
