// Package promise provides deferred-value objects for composing
// asynchronous-shaped code without an event loop.
//
// A Promise[T] represents a value that is not yet available and that will
// eventually be settled, either resolved with a T or rejected with an
// error. Consumers attach handlers with Then, Rescue and Finally; handlers
// fire synchronously, on the caller's goroutine, the moment the promise
// settles (or immediately, if it is already settled when attached).
//
// There is no scheduler, no goroutine, and no lock anywhere in this
// package. Settling a promise and running its continuation happen on the
// thread of whoever calls Resolve or Reject. Producers and consumers that
// live on different goroutines must synchronize externally.
package promise
