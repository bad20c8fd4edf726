// Package records is the in-memory document store behind the development
// backend. Every collection keeps JSON objects in insertion order, keyed by
// a configurable identifier field.
package records

import (
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"
)

type Record = map[string]any

// Collection holds the records of one entity.
type Collection struct {
	mu      sync.RWMutex
	idField string
	numeric bool
	seq     int64
	items   []Record
}

// Key renders the identifier of r as a string, whatever its JSON type.
func (c *Collection) Key(r Record) string {
	v, ok := r[c.idField]
	if !ok || v == nil {
		return ""
	}
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.0f", n)
	default:
		return fmt.Sprint(n)
	}
}

func (c *Collection) IDField() string { return c.idField }

func (c *Collection) List() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.items)
}

// Filter returns clones of the records keep accepts.
func (c *Collection) Filter(keep func(Record) bool) []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []Record{}
	for _, r := range c.items {
		if keep(r) {
			out = append(out, maps.Clone(r))
		}
	}
	return out
}

func (c *Collection) Get(id string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return maps.Clone(c.items[i]), true
	}
	return nil, false
}

// Insert stores r under a freshly assigned identifier, ignoring any
// identifier the caller sent.
func (c *Collection) Insert(r Record) Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	r = maps.Clone(r)
	if r == nil {
		r = Record{}
	}
	if c.numeric {
		c.seq++
		r[c.idField] = c.seq
	} else {
		r[c.idField] = uuid.NewString()
	}
	c.items = append(c.items, r)
	return maps.Clone(r)
}

// Update merges patch into the record id. The identifier cannot change.
func (c *Collection) Update(id string, patch Record) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	keep := c.items[i][c.idField]
	maps.Copy(c.items[i], patch)
	c.items[i][c.idField] = keep
	return maps.Clone(c.items[i]), true
}

func (c *Collection) Delete(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := c.items[:0]
	for _, r := range c.items {
		if _, ok := drop[c.Key(r)]; !ok {
			kept = append(kept, r)
		}
	}
	removed := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

func (c *Collection) index(id string) int {
	for i, r := range c.items {
		if c.Key(r) == id {
			return i
		}
	}
	return -1
}

func cloneAll(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = maps.Clone(r)
	}
	return out
}

// Store is the set of collections, created on first use.
type Store struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

func New() *Store {
	return &Store{collections: map[string]*Collection{}}
}

// Collection returns the collection name, creating it with idField on
// first use. numeric selects sequential integer identifiers over UUIDs.
func (s *Store) Collection(name, idField string, numeric bool) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.collections[name]; ok {
		return c
	}
	c := &Collection{idField: idField, numeric: numeric}
	s.collections[name] = c
	return c
}
