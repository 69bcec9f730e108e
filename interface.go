package promise

// Handle is the consumer-facing contract a *Promise[T] satisfies: settle
// it, or inspect it. Callers normally just use *Promise[T] directly, since
// Then/Rescue/Finally/FinallyMap need the concrete type to pick a
// downstream type parameter.
type Handle[T any] interface {
	State() State
	IsPending() bool
	IsResolved() bool
	IsRejected() bool
	IsSettled() bool
	Value() (T, bool)
	Err() (error, bool)
	Resolve(v T) error
	Reject(err error) error
}

var _ Handle[Unit] = (*Promise[Unit])(nil)
