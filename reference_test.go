package deque_test

import (
	"testing"

	gdeque "github.com/gammazero/deque"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/circdeque"
)

// TestDeque_Reference drives a Deque and a gammazero deque with the same
// operations and checks that both always hold the same sequence.
func TestDeque_Reference(t *testing.T) {
	d := deque.New[int]()
	ref := gdeque.New()

	// Linear congruential generator, so failures are reproducible.
	state := uint32(1)
	next := func() uint32 {
		state = state*1664525 + 1013904223
		return state >> 8
	}

	for step := range 20000 {
		// Bias towards pushes early and pops late, so the buffer grows and
		// then shrinks through several sizes.
		pushBias := uint32(60)
		if step > 10000 {
			pushBias = 40
		}

		switch r := next() % 100; {
		case r < pushBias/2:
			d.PushFront(step)
			ref.PushFront(step)
		case r < pushBias:
			d.PushBack(step)
			ref.PushBack(step)
		case r < pushBias+(100-pushBias)/2:
			v, ok := d.PopFront()
			require.Equal(t, ref.Len() > 0, ok, "step %d", step)
			if ok {
				require.Equal(t, ref.PopFront(), v, "step %d", step)
			}
		default:
			v, ok := d.PopBack()
			require.Equal(t, ref.Len() > 0, ok, "step %d", step)
			if ok {
				require.Equal(t, ref.PopBack(), v, "step %d", step)
			}
		}

		require.Equal(t, ref.Len(), d.Len(), "step %d", step)
		require.GreaterOrEqual(t, d.Cap(), d.Len())
		if step%97 == 0 {
			for i, v := range d.All() {
				require.Equal(t, ref.At(i), v, "step %d index %d", step, i)
			}
		}
	}
}
