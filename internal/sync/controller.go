// Package sync owns the canonical in-memory collection for one entity
// type and reconciles it against confirmed server mutations. The
// collection is a cache of server truth, never the source of truth.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/safar/go-shop-admin/internal/api"
)

// Entity is anything with a server-assigned integer identity.
type Entity interface {
	EntityID() int64
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Controller runs the fetch-reconcile-mutate cycle for one entity type.
// Mutations are last-write-wins by completion order of the round-trip.
// Loads carry a monotonic generation: a load response that was
// overtaken by a newer load or by a completed mutation is discarded
// instead of clobbering the collection.
type Controller[T Entity] struct {
	mu       sync.Mutex
	state    State
	items    []T
	gen      uint64
	notifier Notifier
	check    func(interface{}) error
}

// NewController builds a controller. check, when non-nil, validates
// every entity produced by a merge before it enters the collection.
func NewController[T Entity](notifier Notifier, check func(interface{}) error) *Controller[T] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Controller[T]{notifier: notifier, check: check}
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a snapshot of the canonical collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Controller[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.index(id); idx >= 0 {
		return c.items[idx], true
	}
	var zero T
	return zero, false
}

// index must be called with mu held.
func (c *Controller[T]) index(id int64) int {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// Load replaces the canonical collection with a fresh fetch. On
// failure the collection becomes empty and the reason is surfaced; no
// retry is attempted. A response belonging to a superseded generation
// is discarded.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.state = StateLoading
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.items = nil
		c.state = StateReady
		c.mu.Unlock()
		c.notifier.Error(api.Reason(err))
		return err
	}
	c.items = items
	c.state = StateReady
	c.mu.Unlock()
	return nil
}

// Create submits the round-trip and appends the server-returned entity,
// which carries the server-assigned id. There is no optimistic insert.
func (c *Controller[T]) Create(ctx context.Context, submit func(context.Context) (T, error)) (T, error) {
	created, err := submit(ctx)
	if err != nil {
		c.notifier.Error(api.Reason(err))
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.items = append(c.items, created)
	c.gen++
	c.mu.Unlock()
	return created, nil
}

// Update submits the round-trip and, on success, replaces the element
// matched by id with a shallow merge of the prior value and the
// response: the raw response is unmarshalled into a copy of the prior
// element, so fields absent from the response are preserved. If the id
// is no longer present locally the confirmed result has nothing to
// reconcile against and the collection is left unchanged.
func (c *Controller[T]) Update(ctx context.Context, id int64, submit func(context.Context) (json.RawMessage, error)) (T, error) {
	var zero T

	raw, err := submit(ctx)
	if err != nil {
		c.notifier.Error(api.Reason(err))
		return zero, err
	}

	c.mu.Lock()
	idx := c.index(id)
	if idx < 0 {
		c.gen++
		c.mu.Unlock()
		return zero, nil
	}

	// The merge target must be a deep copy of the prior element: a
	// shallow copy shares slice backing with the stored value, and a
	// response that decodes a slice field before failing would mutate
	// the collection through it.
	prior, err := json.Marshal(c.items[idx])
	if err != nil {
		c.mu.Unlock()
		return zero, fmt.Errorf("encode prior element: %w", err)
	}
	var merged T
	if err := json.Unmarshal(prior, &merged); err != nil {
		c.mu.Unlock()
		return zero, fmt.Errorf("copy prior element: %w", err)
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		c.mu.Unlock()
		err = fmt.Errorf("decode update response: %w", err)
		c.notifier.Error(api.Reason(err))
		return zero, err
	}
	if c.check != nil {
		if err := c.check(merged); err != nil {
			c.mu.Unlock()
			c.notifier.Error(api.Reason(err))
			return zero, err
		}
	}

	c.items[idx] = merged
	c.gen++
	c.mu.Unlock()
	return merged, nil
}

// Delete submits the round-trip and removes the element matched by id
// once the server confirms.
func (c *Controller[T]) Delete(ctx context.Context, id int64, submit func(context.Context) error) error {
	if err := submit(ctx); err != nil {
		c.notifier.Error(api.Reason(err))
		return err
	}

	c.mu.Lock()
	if idx := c.index(id); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
	c.gen++
	c.mu.Unlock()
	return nil
}

// Reconcile applies a local transformation to the element matched by
// id after a sub-resource mutation the server confirmed without
// returning the full entity. It reports whether the element was found.
func (c *Controller[T]) Reconcile(id int64, apply func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.index(id)
	if idx < 0 {
		return false
	}
	c.items[idx] = apply(c.items[idx])
	c.gen++
	return true
}
