package promise

// New allocates a pending Promise[T] and invokes launcher with it
// synchronously, so launcher may settle it immediately or stash the
// handle away for later. It returns the handle either way. The launcher
// runs before New returns, on the caller's goroutine, exactly once.
func New[T any](launcher func(p *Promise[T])) *Promise[T] {
	p := pending[T]()

	if launcher != nil {
		launcher(p)
	}

	return p
}

// Resolved returns a new promise, already resolved with v.
func Resolved[T any](v T) *Promise[T] {
	return settleResolved(v)
}

// ResolvedUnit returns a new promise of type Unit, already resolved.
func ResolvedUnit() *Promise[Unit] {
	return settleResolved(unit)
}

// Rejected returns a new promise, already rejected with err. Unlike
// calling Reject on a pending promise, this factory never triggers the
// "no handler" check.
func Rejected[T any](err error) *Promise[T] {
	return settleRejected[T](err)
}

// RejectedUnit returns a new promise of type Unit, already rejected. If
// err is nil, it defaults to ErrPromiseRejected.
func RejectedUnit(err error) *Promise[Unit] {
	return settleRejected[Unit](err)
}
