package promise

// Outcome is what a Then/Rescue/Finally handler hands back to the chaining
// machinery: either a plain value of the downstream type U, or another
// promise of that same type to adopt.
//
// A handler may return a plain value, nothing, or a further promise to
// adopt. Go has no union return type, so the three shapes ("void",
// "value", "promise") collapse into one discriminated value, built with
// Value or Adopt.
type Outcome[U any] struct {
	value   U
	adopted *Promise[U]
}

// Value settles the downstream promise with v directly. A Unit-typed
// handler that wants to signal "resolved with nothing" returns Value(Unit{}).
func Value[U any](v U) Outcome[U] {
	return Outcome[U]{value: v}
}

// Adopt forwards the eventual settlement of p into the downstream promise.
// Adoption is one level deep: if p itself resolves with another promise,
// that inner promise is not unwrapped further (it becomes the downstream's
// resolved value, unchanged).
func Adopt[U any](p *Promise[U]) Outcome[U] {
	return Outcome[U]{adopted: p}
}

func (o Outcome[U]) isAdopted() bool {
	return o.adopted != nil
}
