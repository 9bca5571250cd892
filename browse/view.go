// Package browse provides the list view-model shared by every resource
// listing: items, loading and error state, filter-driven refetching with
// debouncing, and fetch sequencing so a slow stale response never
// overwrites a newer one.
package browse

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ganeshdatta23/skillstacker"
)

// DefaultDebounce is the delay applied to filter-driven refreshes so a
// request is not fired per keystroke.
const DefaultDebounce = 300 * time.Millisecond

// FetchFunc loads one page of items for the view's current filters.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Phase is the rendering state of a view.
type Phase int

const (
	// PhaseLoading means a fetch is in flight and nothing has been
	// applied yet.
	PhaseLoading Phase = iota
	// PhaseError means the last fetch failed and no fallback absorbed it.
	PhaseError
	// PhaseEmpty means the last fetch succeeded with zero items.
	PhaseEmpty
	// PhasePopulated means items are available.
	PhasePopulated
)

// Snapshot is an immutable copy of the view state for rendering.
type Snapshot[T any] struct {
	Items        []T
	Err          error
	Loading      bool
	UsedFallback bool
}

// Phase classifies the snapshot for rendering. Fallback items render as
// populated; the error is still present for an inline notice.
func (s Snapshot[T]) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Err != nil && !s.UsedFallback:
		return PhaseError
	case len(s.Items) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

// View owns the state of one resource listing. All exported methods are
// safe for concurrent use; responses are applied in generation order so
// the newest request always wins regardless of arrival order.
type View[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	fallback []T
	debounce time.Duration
	onChange func(Snapshot[T])

	items        []T
	err          error
	loading      bool
	usedFallback bool

	gen     uint64 // newest issued fetch
	applied uint64 // newest applied response
	timer   *time.Timer
}

// ViewOption configures a View.
type ViewOption[T any] func(*View[T])

// WithFallback sets static placeholder items shown when the backend is
// unreachable, so the listing is never fully blank.
func WithFallback[T any](items []T) ViewOption[T] {
	return func(v *View[T]) {
		v.fallback = items
	}
}

// WithDebounce overrides the filter-refresh debounce delay.
func WithDebounce[T any](d time.Duration) ViewOption[T] {
	return func(v *View[T]) {
		v.debounce = d
	}
}

// WithOnChange registers a render callback invoked after every state
// change with a fresh snapshot.
func WithOnChange[T any](fn func(Snapshot[T])) ViewOption[T] {
	return func(v *View[T]) {
		v.onChange = fn
	}
}

// NewView creates a view around a fetch function.
func NewView[T any](fetch FetchFunc[T], opts ...ViewOption[T]) *View[T] {
	v := &View[T]{
		fetch:    fetch,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Reload fetches immediately and applies the response unless a newer
// fetch was issued in the meantime.
func (v *View[T]) Reload(ctx context.Context) Snapshot[T] {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	v.notifyLocked()
	v.mu.Unlock()

	items, err := v.fetch(ctx)
	return v.apply(gen, items, err)
}

// Refresh schedules a debounced reload, coalescing rapid filter edits
// into one fetch. The fetch runs on its own goroutine once the debounce
// window closes.
func (v *View[T]) Refresh(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, func() {
		v.Reload(ctx)
	})
}

// Snapshot returns a copy of the current state.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// apply installs a response if its generation is still the newest seen.
// Stale responses are discarded and the current state returned.
func (v *View[T]) apply(gen uint64, items []T, err error) Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen < v.gen || gen <= v.applied {
		// A newer fetch was issued or already applied; drop this one.
		return v.snapshotLocked()
	}
	v.applied = gen
	v.loading = false
	v.usedFallback = false

	switch {
	case err == nil:
		v.items = items
		v.err = nil
	case errors.Is(err, skillstacker.ErrBackendUnreachable) && v.fallback != nil:
		v.items = v.fallback
		v.err = err
		v.usedFallback = true
	default:
		v.items = nil
		v.err = err
	}

	v.notifyLocked()
	return v.snapshotLocked()
}

func (v *View[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(v.items))
	copy(items, v.items)
	return Snapshot[T]{
		Items:        items,
		Err:          v.err,
		Loading:      v.loading,
		UsedFallback: v.usedFallback,
	}
}

func (v *View[T]) notifyLocked() {
	if v.onChange != nil {
		v.onChange(v.snapshotLocked())
	}
}
