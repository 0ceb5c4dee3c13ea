// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. They are context-aware counterparts of the rop functions
// and the building blocks of package chain.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: turn an invalid input into a failure
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapFailure/DoubleMap: transform either side
// - Try/FailOnError: adapt (Out, error) style functions
// - Recover: replace a failure with a new result
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
