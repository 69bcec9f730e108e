package promise

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrAlreadySettled is returned by Resolve or Reject when called on a
// promise that is no longer pending.
var ErrAlreadySettled = errors.New("promise: already settled")

// ErrUnhandledRejection is returned by Reject when called on a promise
// that has no continuation installed and was not constructed already
// rejected via Rejected/RejectedUnit.
var ErrUnhandledRejection = errors.New("promise: unhandled rejection")

// ErrPromiseRejected is the default rejection reason used when Reject or
// RejectedUnit are called with a nil error.
var ErrPromiseRejected = errors.New("promise: promise was rejected")

// rejectionCarrier is the opaque error carrier a rejection reason is
// wrapped in. A handler that panics with a non-error value has it turned
// into an error first (see panicToError in chain.go), then wrapped here
// exactly like a caller-supplied error would be.
type rejectionCarrier struct {
	original error
	cause    error
}

// wrapRejection wraps a rejected error into a carrier, adding a stack
// trace. If err is already a carrier, it is returned as-is.
func wrapRejection(err error) error {
	if err == nil {
		err = ErrPromiseRejected
	}

	if rc, ok := err.(*rejectionCarrier); ok {
		return rc
	}

	return &rejectionCarrier{original: err, cause: pkgerrors.WithStack(err)}
}

func (e *rejectionCarrier) Error() string {
	return e.cause.Error()
}

func (e *rejectionCarrier) Unwrap() error {
	return e.cause
}

// Value returns the original error passed to Reject, before wrapping. It
// is the Go equivalent of re-raising and catching the carrier's original
// exception object.
func (e *rejectionCarrier) Value() any {
	return e.original
}

// CarrierValue recovers the original value a promise was rejected with,
// unwrapping the opaque carrier installed by Reject. If err is nil or was
// never produced by this package, err itself is returned.
func CarrierValue(err error) any {
	var rc *rejectionCarrier
	if errors.As(err, &rc) {
		return rc.Value()
	}

	return err
}
