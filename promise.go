package promise

import (
	"fmt"

	"github.com/google/uuid"
)

// Promise holds the state, settled value, and at-most-one continuation for
// a value of type T that is not yet available. It is created pending and
// is referred to only through its pointer, which acts as the shared
// handle.
//
// A Promise must never be copied; always pass *Promise[T].
type Promise[T any] struct {
	id    uuid.UUID
	state State
	value T
	err   error

	continuation func()
}

// pending allocates a new, unsettled promise.
func pending[T any]() *Promise[T] {
	return &Promise[T]{
		id:    uuid.New(),
		state: StatePending,
	}
}

// ID returns an opaque identifier for this promise, stable for its
// lifetime, useful only for correlating promises in diagnostics such as
// the message an UnhandledRejection error carries.
func (p *Promise[T]) ID() uuid.UUID {
	return p.id
}

// State returns the current state of the promise.
func (p *Promise[T]) State() State {
	return p.state
}

func (p *Promise[T]) IsPending() bool {
	return p.state == StatePending
}

func (p *Promise[T]) IsResolved() bool {
	return p.state == StateResolved
}

func (p *Promise[T]) IsRejected() bool {
	return p.state == StateRejected
}

func (p *Promise[T]) IsSettled() bool {
	return p.state != StatePending
}

// Value returns the resolved value and true, if the promise is resolved;
// otherwise it returns the zero value of T and false.
func (p *Promise[T]) Value() (T, bool) {
	if p.state != StateResolved {
		var zero T
		return zero, false
	}

	return p.value, true
}

// Err returns the rejection error and true, if the promise is rejected;
// otherwise it returns nil and false. The returned error unwraps to the
// original rejected value via CarrierValue.
func (p *Promise[T]) Err() (error, bool) {
	if p.state != StateRejected {
		return nil, false
	}

	return p.err, true
}

// HasContinuation reports whether a continuation is currently installed.
func (p *Promise[T]) HasContinuation() bool {
	return p.continuation != nil
}

// Resolve settles the promise with v. It fails with ErrAlreadySettled if
// the promise is no longer pending. If a continuation is installed, it
// fires synchronously, after the state and value have been updated.
func (p *Promise[T]) Resolve(v T) error {
	if p.state != StatePending {
		return ErrAlreadySettled
	}

	p.state = StateResolved
	p.value = v

	if p.continuation != nil {
		p.continuation()
	}

	return nil
}

// Reject settles the promise with err, wrapping it into an opaque carrier
// if it isn't one already. It fails with ErrAlreadySettled if the promise
// is no longer pending.
//
// If no continuation is installed, Reject itself fails with
// ErrUnhandledRejection: this is the "loud" failure mode for a rejection
// nobody is listening to. Promises constructed already-rejected via
// Rejected/RejectedUnit are exempt from this check.
func (p *Promise[T]) Reject(err error) error {
	if p.state != StatePending {
		return ErrAlreadySettled
	}

	p.state = StateRejected
	p.err = wrapRejection(err)

	if p.continuation != nil {
		p.continuation()

		return nil
	}

	return fmt.Errorf("%w: promise %s settled with no handler: %w", ErrUnhandledRejection, p.id, p.err)
}

// settleResolved is used internally to construct an already-resolved
// promise (the Resolved and ResolvedUnit factories), bypassing the pending
// precondition.
func settleResolved[T any](v T) *Promise[T] {
	return &Promise[T]{
		id:    uuid.New(),
		state: StateResolved,
		value: v,
	}
}

// settleRejected is used internally to construct an already-rejected
// promise. It never triggers the "no handler" check.
func settleRejected[T any](err error) *Promise[T] {
	return &Promise[T]{
		id:    uuid.New(),
		state: StateRejected,
		err:   wrapRejection(err),
	}
}
