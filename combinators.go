package promise

// All resolves with every input promise's value, in input order, once all
// of them have resolved; it rejects with whichever rejection settles
// first, and ignores any rejection that arrives after the downstream has
// already settled.
//
// It is built entirely out of the core's attach and Resolve/Reject: no
// goroutines, no extra locking.
func All[T any](ps ...*Promise[T]) *Promise[[]T] {
	if len(ps) == 0 {
		return Resolved([]T{})
	}

	results := make([]T, len(ps))
	remaining := len(ps)
	downstream := pending[[]T]()

	for i := range ps {
		idx, p := i, ps[i]

		attach(p, func() {
			if downstream.IsSettled() {
				return
			}

			switch p.state {
			case StateResolved:
				results[idx] = p.value
				remaining--

				if remaining == 0 {
					_ = downstream.Resolve(append([]T(nil), results...))
				}
			case StateRejected:
				_ = downstream.Reject(p.err)
			}
		})
	}

	return downstream
}

// Race settles identically to whichever of its inputs settles first,
// ignoring every later settlement. With no inputs it stays pending
// forever; nothing bounds how long a promise may be left pending.
func Race[T any](ps ...*Promise[T]) *Promise[T] {
	downstream := pending[T]()

	for _, p := range ps {
		p := p

		attach(p, func() {
			if downstream.IsSettled() {
				return
			}

			switch p.state {
			case StateResolved:
				_ = downstream.Resolve(p.value)
			case StateRejected:
				_ = downstream.Reject(p.err)
			}
		})
	}

	return downstream
}
