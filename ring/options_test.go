package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ringkit/ring"
	"github.com/joshuapare/ringkit/ring/alloc"
)

func TestDefaultOptions(t *testing.T) {
	r, err := ring.New(ring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 64, r.Capacity())
	require.Equal(t, 0, r.Size())
}

func TestOptionsValidation(t *testing.T) {
	cases := []struct {
		name string
		opts ring.Options
		want error
	}{
		{
			name: "zero capacity arena",
			opts: ring.Options{Mode: ring.ModeArenaFixed},
			want: ring.ErrCapacity,
		},
		{
			name: "negative capacity",
			opts: ring.Options{Mode: ring.ModeArenaFixed, Capacity: -1},
			want: ring.ErrCapacity,
		},
		{
			name: "capacity past index width",
			opts: ring.Options{Mode: ring.ModeArenaFixed, Capacity: 256, IndexWidth: 8},
			want: ring.ErrCapacity,
		},
		{
			name: "bad index width",
			opts: ring.Options{Mode: ring.ModeArenaFixed, Capacity: 4, IndexWidth: 12},
			want: ring.ErrInvalidArgument,
		},
		{
			name: "fallback without fast alloc",
			opts: ring.Options{Mode: ring.ModeArenaFixed, Capacity: 4, HeapFallback: true},
			want: ring.ErrInvalidArgument,
		},
		{
			name: "fallback on heap mode",
			opts: ring.Options{Mode: ring.ModeHeap, HeapFallback: true},
			want: ring.ErrInvalidArgument,
		},
		{
			name: "fallback on growable mode",
			opts: ring.Options{
				Mode: ring.ModeArenaGrowable, Capacity: 4,
				FastAlloc: true, HeapFallback: true,
			},
			want: ring.ErrInvalidArgument,
		},
		{
			name: "unknown mode",
			opts: ring.Options{Mode: ring.Mode(42), Capacity: 4},
			want: ring.ErrInvalidArgument,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ring.New(c.opts)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestCapacityAtIndexWidthBound(t *testing.T) {
	opts := ring.Options{
		Mode: ring.ModeArenaFixed, Capacity: 255,
		FastAlloc: true, TrackSize: true, IndexWidth: 8,
	}
	r, err := ring.New(opts)
	require.NoError(t, err)
	require.Equal(t, 255, r.Capacity())
}

func TestGrowableSaturatesAtIndexWidth(t *testing.T) {
	opts := ring.Options{
		Mode: ring.ModeArenaGrowable, Capacity: 200,
		TrackSize: true, IndexWidth: 8,
	}
	r, err := ring.New(opts)
	require.NoError(t, err)
	for i := 0; i < 255; i++ {
		_, err := r.PushBack(i)
		require.NoError(t, err)
	}
	require.Equal(t, 255, r.Capacity())
	_, err = r.PushBack("overflow")
	require.ErrorIs(t, err, ring.ErrExhausted)
}

func TestNewWithCallerAllocator(t *testing.T) {
	a, err := alloc.NewArena(4, true)
	require.NoError(t, err)
	r, err := ring.NewWith(alloc.NewStack(a), ring.Options{TrackSize: true})
	require.NoError(t, err)

	require.Equal(t, 4, r.Capacity())
	for i := 0; i < 4; i++ {
		_, err := r.PushBack(i)
		require.NoError(t, err)
	}
	_, err = r.PushBack("full")
	require.ErrorIs(t, err, ring.ErrExhausted)
	require.Equal(t, 4, a.LiveCount())
}

func TestNewWithNilAllocator(t *testing.T) {
	_, err := ring.NewWith(nil, ring.Options{})
	require.ErrorIs(t, err, ring.ErrInvalidArgument)
}

func TestNewWithGrowableRebasesHead(t *testing.T) {
	g, err := alloc.NewGrowable(2, 64)
	require.NoError(t, err)
	r, err := ring.NewWith(g, ring.Options{TrackSize: true})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := r.PushBack(i)
		require.NoError(t, err)
	}
	// The head survived at least two relocations.
	require.Equal(t, 0, r.Head().Payload())
	require.True(t, g.Arena().Owns(r.Head()))
}
