package promise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllWithNoInputsResolvesEmpty(t *testing.T) {
	p := All[int]()

	require.True(t, p.IsResolved())

	v, _ := p.Value()
	require.Empty(t, v)
}

func TestAllResolvesInInputOrder(t *testing.T) {
	downstream := All(Resolved(1), Resolved(2), Resolved(3))

	require.True(t, downstream.IsResolved())

	v, _ := downstream.Value()
	require.Equal(t, []int{1, 2, 3}, v)
}

func TestAllWaitsForEveryInputBeforeResolving(t *testing.T) {
	var stash1, stash2 *Promise[int]

	p1 := New(func(p *Promise[int]) { stash1 = p })
	p2 := New(func(p *Promise[int]) { stash2 = p })

	downstream := All(p1, p2)
	require.True(t, downstream.IsPending())

	require.NoError(t, stash1.Resolve(1))
	require.True(t, downstream.IsPending(), "still waiting on the second input")

	require.NoError(t, stash2.Resolve(2))
	require.True(t, downstream.IsResolved())

	v, _ := downstream.Value()
	require.Equal(t, []int{1, 2}, v)
}

func TestAllRejectsWithFirstRejectionAndIgnoresLater(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	var stash2 *Promise[int]
	p2 := New(func(p *Promise[int]) { stash2 = p })

	downstream := All(Rejected[int](first), p2)

	require.True(t, downstream.IsRejected())

	err, _ := downstream.Err()
	require.Same(t, first, CarrierValue(err))

	// settling the still-pending input afterwards must not panic nor
	// change the already-settled downstream.
	require.NoError(t, stash2.Reject(second))

	err, _ = downstream.Err()
	require.Same(t, first, CarrierValue(err))
}

func TestRaceSettlesAsTheFirstInputThatSettles(t *testing.T) {
	var stash *Promise[int]
	pending := New(func(p *Promise[int]) { stash = p })

	downstream := Race(pending, Resolved(1))

	require.True(t, downstream.IsResolved())

	v, _ := downstream.Value()
	require.Equal(t, 1, v)

	// the still-pending input settling afterwards must not change the
	// downstream, and must not panic from the lack of a listener either,
	// since Race always attaches a continuation.
	require.NoError(t, stash.Resolve(99))

	v, _ = downstream.Value()
	require.Equal(t, 1, v)
}

func TestRaceWithNoInputsStaysPending(t *testing.T) {
	downstream := Race[int]()

	require.True(t, downstream.IsPending())
}
