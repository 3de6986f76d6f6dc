// Package registry maps object identifiers to live objects without owning them.
//
// The registry is an arena of slots. Each registration occupies a slot and
// receives a Handle made of the slot index and the slot generation. Releasing
// an object bumps the generation, so any Handle or index entry minted before
// the release no longer resolves:
//
//	id -> Handle{Index, Gen} -> slots[Index] (valid only while Gen matches)
//
// Ownership stays with the parent collection in the object tree. The tree
// calls Release when it drops an object; the registry never keeps an object
// reachable past that point.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Errors for registry operations.
var (
	ErrNotFound  = errors.New("object not found")
	ErrDuplicate = errors.New("object already registered")
	ErrInvalidID = errors.New("invalid object id")
)

// ID is the textual form of a 128-bit random identifier.
type ID string

// NewID mints a fresh identifier.
func NewID() ID {
	return ID(uuid.New().String())
}

// ParseID validates the textual form of an identifier.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(u.String()), nil
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// Entry is anything the registry can index.
type Entry interface {
	ID() ID
}

// Handle addresses one registration. It stops resolving once the
// registration is released, even if the slot is reused.
type Handle struct {
	Index uint32
	Gen   uint32
}

type slot[T Entry] struct {
	gen  uint32
	live bool
	obj  T
}

// Registry is safe for concurrent use.
type Registry[T Entry] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []uint32
	index map[ID]Handle
}

// New creates an empty registry.
func New[T Entry]() *Registry[T] {
	return &Registry[T]{
		index: make(map[ID]Handle),
	}
}

// Register indexes obj under obj.ID().
func (r *Registry[T]) Register(obj T) (Handle, error) {
	id := obj.ID()
	if id == "" {
		return Handle{}, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.index[id]; ok {
		if r.validLocked(h) {
			return Handle{}, fmt.Errorf("%w: %s", ErrDuplicate, id)
		}
		delete(r.index, id)
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot[T]{})
		idx = uint32(len(r.slots) - 1)
	}

	s := &r.slots[idx]
	s.live = true
	s.obj = obj
	h := Handle{Index: idx, Gen: s.gen}
	r.index[id] = h
	return h, nil
}

// Lookup returns the live object registered under id. A stale index entry
// found along the way is evicted.
func (r *Registry[T]) Lookup(id ID) (T, error) {
	var zero T

	r.mu.RLock()
	h, ok := r.index[id]
	if ok && r.validLocked(h) {
		obj := r.slots[h.Index].obj
		r.mu.RUnlock()
		return obj, nil
	}
	r.mu.RUnlock()

	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r.mu.Lock()
	if cur, still := r.index[id]; still && cur == h && !r.validLocked(cur) {
		delete(r.index, id)
	}
	r.mu.Unlock()
	return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Release drops the registration for id. It reports whether a live
// registration existed.
func (r *Registry[T]) Release(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.index[id]
	if !ok {
		return false
	}
	delete(r.index, id)
	return r.expireLocked(h)
}

// Expire invalidates the registration behind h. The id index entry is left
// in place and evicted by the next Lookup that meets it.
func (r *Registry[T]) Expire(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expireLocked(h)
}

func (r *Registry[T]) expireLocked(h Handle) bool {
	if !r.validLocked(h) {
		return false
	}
	var zero T
	s := &r.slots[h.Index]
	s.live = false
	s.obj = zero
	s.gen++
	r.free = append(r.free, h.Index)
	return true
}

// Prune evicts every stale index entry and returns how many were removed.
func (r *Registry[T]) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, h := range r.index {
		if !r.validLocked(h) {
			delete(r.index, id)
			n++
		}
	}
	return n
}

// ListActive returns a snapshot of every live registration.
func (r *Registry[T]) ListActive() map[ID]T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[ID]T, len(r.index))
	for id, h := range r.index {
		if r.validLocked(h) {
			out[id] = r.slots[h.Index].obj
		}
	}
	return out
}

// Len returns the number of live registrations.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots) - len(r.free)
}

func (r *Registry[T]) validLocked(h Handle) bool {
	if int(h.Index) >= len(r.slots) {
		return false
	}
	s := r.slots[h.Index]
	return s.live && s.gen == h.Gen
}
