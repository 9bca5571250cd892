package browse

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshdatta23/skillstacker"
)

func TestView_ReloadPopulates(t *testing.T) {
	view := NewView(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	snap := view.Reload(context.Background())
	assert.Equal(t, PhasePopulated, snap.Phase())
	assert.Equal(t, []string{"a", "b"}, snap.Items)
	assert.NoError(t, snap.Err)
	assert.False(t, snap.Loading)
}

func TestView_EmptyIsNotError(t *testing.T) {
	view := NewView(func(ctx context.Context) ([]string, error) {
		return []string{}, nil
	})

	snap := view.Reload(context.Background())
	assert.Equal(t, PhaseEmpty, snap.Phase())
	assert.NoError(t, snap.Err)
}

func TestView_ErrorPhase(t *testing.T) {
	boom := errors.New("boom")
	view := NewView(func(ctx context.Context) ([]string, error) {
		return nil, boom
	})

	snap := view.Reload(context.Background())
	assert.Equal(t, PhaseError, snap.Phase())
	assert.ErrorIs(t, snap.Err, boom)
	assert.Empty(t, snap.Items)
}

func TestView_FallbackOnUnreachable(t *testing.T) {
	unreachable := fmt.Errorf("%w: connection refused", skillstacker.ErrBackendUnreachable)
	view := NewView(func(ctx context.Context) ([]string, error) {
		return nil, unreachable
	}, WithFallback([]string{"sample"}))

	snap := view.Reload(context.Background())
	assert.Equal(t, PhasePopulated, snap.Phase(), "fallback items render as populated")
	assert.True(t, snap.UsedFallback)
	assert.Equal(t, []string{"sample"}, snap.Items)
	assert.ErrorIs(t, snap.Err, skillstacker.ErrBackendUnreachable)
}

func TestView_NoFallbackForOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	view := NewView(func(ctx context.Context) ([]string, error) {
		return nil, boom
	}, WithFallback([]string{"sample"}))

	snap := view.Reload(context.Background())
	assert.Equal(t, PhaseError, snap.Phase(), "fallback only absorbs unreachable backends")
	assert.False(t, snap.UsedFallback)
}

func TestView_FallbackReplacedByRealData(t *testing.T) {
	var healthy atomic.Bool
	view := NewView(func(ctx context.Context) ([]string, error) {
		if !healthy.Load() {
			return nil, fmt.Errorf("%w: connection refused", skillstacker.ErrBackendUnreachable)
		}
		return []string{"real"}, nil
	}, WithFallback([]string{"sample"}))

	snap := view.Reload(context.Background())
	require.True(t, snap.UsedFallback)

	healthy.Store(true)
	snap = view.Reload(context.Background())
	assert.False(t, snap.UsedFallback)
	assert.NoError(t, snap.Err)
	assert.Equal(t, []string{"real"}, snap.Items)
}

func TestView_StaleResponseDiscarded(t *testing.T) {
	var calls atomic.Int32
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	view := NewView(func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			<-release // hold the first response until the second applied
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	})

	done := make(chan Snapshot[string])
	go func() {
		done <- view.Reload(context.Background())
	}()

	<-firstStarted
	snap := view.Reload(context.Background())
	assert.Equal(t, []string{"new"}, snap.Items)

	close(release)
	stale := <-done
	assert.Equal(t, []string{"new"}, stale.Items, "slow first response must not overwrite the newer one")
	assert.Equal(t, []string{"new"}, view.Snapshot().Items)
}

func TestView_RefreshDebounces(t *testing.T) {
	var calls atomic.Int32
	view := NewView(func(ctx context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"x"}, nil
	}, WithDebounce[string](20*time.Millisecond))

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		view.Refresh(ctx)
	}

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond, "rapid refreshes must coalesce into one fetch")

	// No further fetches after the window closed.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []string{"x"}, view.Snapshot().Items)
}

func TestView_OnChangeObservesLoadingThenPopulated(t *testing.T) {
	var phases []Phase
	view := NewView(func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	}, WithOnChange(func(s Snapshot[string]) {
		phases = append(phases, s.Phase())
	}))

	view.Reload(context.Background())

	require.Len(t, phases, 2)
	assert.Equal(t, PhaseLoading, phases[0])
	assert.Equal(t, PhasePopulated, phases[1])
}

func TestSnapshot_IsACopy(t *testing.T) {
	view := NewView(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	view.Reload(context.Background())

	snap := view.Snapshot()
	snap.Items[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, view.Snapshot().Items)
}
