package promise

import "fmt"

// attach installs fire as p's continuation, overwriting whatever
// continuation was installed before. If p is already settled, fire runs
// immediately, synchronously, right here; otherwise it waits for a future
// call to Resolve or Reject.
func attach[T any](p *Promise[T], fire func()) {
	p.continuation = fire

	if p.IsSettled() {
		fire()
	}
}

// panicToError turns a recovered panic value into an error, preserving
// object identity when the panicked value already was an error so that a
// rethrown rejection carrier compares equal to the original.
func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("%v", r)
}

// settle runs produce, catches any panic it raises, and uses the result
// (or the panic, turned into a rejection) to settle downstream.
func settle[U any](downstream *Promise[U], produce func() Outcome[U]) {
	outcome, err := func() (out Outcome[U], rejectErr error) {
		defer func() {
			if r := recover(); r != nil {
				rejectErr = panicToError(r)
			}
		}()

		out = produce()

		return out, nil
	}()

	if err != nil {
		_ = downstream.Reject(err)

		return
	}

	if outcome.isAdopted() {
		pipe(outcome.adopted, downstream)

		return
	}

	_ = downstream.Resolve(outcome.value)
}

// pipe forwards the eventual settlement of source into downstream,
// unchanged. Adoption is exactly this, applied one level deep: pipe is
// never called recursively on the value a promise resolves with.
func pipe[U any](source, downstream *Promise[U]) {
	attach(source, func() {
		switch source.state {
		case StateResolved:
			_ = downstream.Resolve(source.value)
		case StateRejected:
			_ = downstream.Reject(source.err)
		}
	})
}

// Then is the general chaining primitive. It installs a continuation on p
// that, once p settles, invokes onResolve or onReject and uses the
// returned Outcome to settle the new downstream promise, which Then
// returns immediately.
//
// Then is a free function rather than a method because Go methods cannot
// introduce new type parameters beyond the receiver's.
func Then[T, U any](p *Promise[T], onResolve func(T) Outcome[U], onReject func(error) Outcome[U]) *Promise[U] {
	downstream := pending[U]()

	attach(p, func() {
		settle(downstream, func() Outcome[U] {
			switch p.state {
			case StateResolved:
				return onResolve(p.value)
			case StateRejected:
				return onReject(p.err)
			default:
				panic("promise: continuation fired on a pending promise")
			}
		})
	})

	return downstream
}

// ThenResolve attaches only a resolve handler: onReject re-raises the
// received error carrier, which Then's panic recovery turns straight back
// into the downstream's rejection.
func ThenResolve[T, U any](p *Promise[T], onResolve func(T) Outcome[U]) *Promise[U] {
	return Then(p, onResolve, Rethrow[U])
}

// Rethrow is a reject handler that re-raises the error carrier it
// receives. It is the default reject handler ThenResolve installs, and is
// exported because it is occasionally useful on its own, e.g. in a
// Then(onResolve, Rethrow[U]) call written out explicitly.
func Rethrow[U any](err error) Outcome[U] {
	panic(err)
}

// Rescue attaches only a reject handler: the resolve branch forwards T
// untouched (identity), and the downstream type reduces to T combined
// with the reject handler's return type.
//
// This is the common, same-type case; use Then directly when the
// recovery value's type differs from T.
func Rescue[T any](p *Promise[T], onReject func(error) Outcome[T]) *Promise[T] {
	return Then(p, func(v T) Outcome[T] { return Value(v) }, onReject)
}

// FinallyMap is the general finally primitive: onSettle is invoked on
// both settlement paths, receiving either the resolved value or the
// rejection error as a Settlement[T], and its return value settles the
// downstream promise via the same combinator rules as Then.
func FinallyMap[T, U any](p *Promise[T], onSettle func(Settlement[T]) Outcome[U]) *Promise[U] {
	return Then(p,
		func(v T) Outcome[U] { return onSettle(resolvedSettlement(v)) },
		func(err error) Outcome[U] { return onSettle(rejectedSettlement[T](err)) },
	)
}

// Finally is the common case of finally: onSettle takes no arguments and
// the downstream carries the exact same settlement as the upstream
// promise (a cleanup side effect, not a transformation).
func Finally[T any](p *Promise[T], onSettle func()) *Promise[T] {
	return FinallyMap(p, func(s Settlement[T]) Outcome[T] {
		onSettle()

		if v, ok := s.Value(); ok {
			return Value(v)
		}

		err, _ := s.Err()

		panic(err)
	})
}
