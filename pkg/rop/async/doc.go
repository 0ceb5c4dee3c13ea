// Package async provides AsyncResult[T, E], the asynchronous counterpart of
// rop.Result. It wraps a future of a Result and sequences further
// future-producing steps onto it with first-failure short-circuit:
//
//	res := async.ThenCompose(
//		async.ThenCompose(async.Of(load(id)), validate),
//		store)
//
// Steps run in declaration order; once a step resolves to a Failure no later
// step is invoked and the chain resolves to that Failure.
package async
