package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

// ErrUnsupported is returned when an entity has no endpoint for an operation.
var ErrUnsupported = errors.New("operation not supported")

// Entity configures a Collection for one record type.
type Entity[T any] struct {
	// Name labels the entity in user-facing messages, e.g. "Truck".
	Name      string
	Endpoints Endpoints
	ID        func(T) string
	SetID     func(*T, string)
	// CreatedIDField names the field of the create response data holding
	// the new identifier, which is merged into the submitted payload. When
	// empty the create response data is the full record.
	CreatedIDField string
	// UpdateReturnsRecord overlays the update response data on the submitted
	// payload when it names the same identifier.
	UpdateReturnsRecord bool
}

// Collection is the in-memory mirror of one backend resource.
type Collection[T any] struct {
	deps Deps
	def  Entity[T]
	log  logging.Logger

	mu       sync.Mutex
	items    []T
	inFlight int
	lastErr  error
}

// New returns an empty collection.
func New[T any](deps Deps, def Entity[T]) *Collection[T] {
	deps = deps.withDefaults()
	def.Endpoints = def.Endpoints.withDefaults()
	return &Collection[T]{
		deps:  deps,
		def:   def,
		log:   deps.Log.With("entity", def.Name),
		items: []T{},
	}
}

func (c *Collection[T]) Name() string { return c.def.Name }

// HasDetail reports whether the backend serves single records.
func (c *Collection[T]) HasDetail() bool { return c.def.Endpoints.Detail != nil }

// Items returns a copy of the current list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Loading reports whether any operation is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Err is the error of the most recently completed operation, nil after a
// success.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Find returns the local record with the given identifier.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) begin() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
}

// finish records the outcome and runs mutate under the lock.
func (c *Collection[T]) finish(err error, mutate func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	c.lastErr = err
	if err == nil && mutate != nil {
		mutate()
	}
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(v T) bool { return c.def.ID(v) == id })
}

// fail logs, notifies and records err. op is the Indonesian verb phrase.
func (c *Collection[T]) fail(ctx context.Context, op string, err error) string {
	msg := fmt.Sprintf("Gagal %s %s: %s", op, c.def.Name, describe(err))
	c.log.Warn(ctx, "operation failed", "op", op, "error", err)
	c.deps.Notifier.Error(msg)
	c.finish(err, nil)
	return msg
}

func (c *Collection[T]) request(ctx context.Context, method, path string, query url.Values, body any) (*client.Envelope, error) {
	return c.deps.Do(ctx, client.Request{Method: method, Path: path, Query: query, Body: body})
}

// FetchAll replaces the list with the backend's collection.
func (c *Collection[T]) FetchAll(ctx context.Context) Result[[]T] {
	return c.FetchFrom(ctx, c.def.Endpoints.List, nil)
}

// FetchFrom is FetchAll against another list endpoint of the same resource,
// e.g. a filtered view. suffix is relative to the entity base path.
func (c *Collection[T]) FetchFrom(ctx context.Context, suffix string, query url.Values) Result[[]T] {
	c.begin()

	env, err := c.request(ctx, http.MethodGet, c.def.Endpoints.Base+suffix, query, nil)
	var list []T
	if err == nil {
		list, err = decodeList[T](env)
	}
	if err != nil {
		return failed[[]T](err, c.fail(ctx, "mengambil data", err))
	}

	list = c.unique(list)
	c.finish(nil, func() { c.items = list })

	msg := fmt.Sprintf("Berhasil mengambil %d %s", len(list), c.def.Name)
	c.deps.Notifier.Success(msg)
	return succeeded(slices.Clone(list), msg)
}

// unique keeps the first position of each identifier and the last value.
func (c *Collection[T]) unique(list []T) []T {
	out := make([]T, 0, len(list))
	pos := make(map[string]int, len(list))
	for _, v := range list {
		id := c.def.ID(v)
		if i, ok := pos[id]; ok {
			out[i] = v
			continue
		}
		pos[id] = len(out)
		out = append(out, v)
	}
	return out
}

// FetchByID loads one record. The list is not touched.
func (c *Collection[T]) FetchByID(ctx context.Context, id string) Result[T] {
	c.begin()

	if id == "" {
		return failed[T](common.ErrEmptyID, c.fail(ctx, "mendapatkan data", common.ErrEmptyID))
	}
	if c.def.Endpoints.Detail == nil {
		return failed[T](ErrUnsupported, c.fail(ctx, "mendapatkan data", ErrUnsupported))
	}

	path, query := c.def.Endpoints.Detail(c.def.Endpoints.Base, id)
	env, err := c.request(ctx, http.MethodGet, path, query, nil)
	var rec T
	if err == nil {
		if !env.HasData() {
			err = common.ErrNotFound
		} else {
			rec, err = decode[T](env)
		}
	}
	if err != nil {
		return failed[T](err, c.fail(ctx, "mendapatkan data", err))
	}

	c.finish(nil, nil)
	return succeeded(rec, "")
}

// Create submits payload and appends the created record. The identifier is
// always the one assigned by the backend.
func (c *Collection[T]) Create(ctx context.Context, payload T) Result[T] {
	c.begin()

	env, err := c.request(ctx, http.MethodPost, c.def.Endpoints.Base+c.def.Endpoints.Create, nil, payload)
	var rec T
	if err == nil {
		rec, err = c.created(env, payload)
	}
	if err != nil {
		return failed[T](err, c.fail(ctx, "menambah", err))
	}

	c.finish(nil, func() {
		if i := c.indexOf(c.def.ID(rec)); i >= 0 {
			c.items[i] = rec
			return
		}
		c.items = append(c.items, rec)
	})

	msg := fmt.Sprintf("%s berhasil ditambahkan", c.def.Name)
	c.deps.Notifier.Success(msg)
	return succeeded(rec, msg)
}

func (c *Collection[T]) created(env *client.Envelope, payload T) (T, error) {
	if c.def.CreatedIDField == "" {
		if !env.HasData() {
			return payload, fmt.Errorf("%w: create response has no record", common.ErrBadResponse)
		}
		rec, err := decode[T](env)
		if err != nil {
			return rec, err
		}
		if c.def.ID(rec) == "" {
			return rec, fmt.Errorf("%w: create response has no identifier", common.ErrBadResponse)
		}
		return rec, nil
	}

	fields, err := decode[map[string]json.RawMessage](env)
	if err != nil {
		return payload, err
	}
	id := rawID(fields[c.def.CreatedIDField])
	if id == "" {
		return payload, fmt.Errorf("%w: create response has no %s", common.ErrBadResponse, c.def.CreatedIDField)
	}
	c.def.SetID(&payload, id)
	return payload, nil
}

// Update sends payload for id and replaces the matching local record in
// place. When no local record matches, the result is marked Stale and the
// list is left alone.
func (c *Collection[T]) Update(ctx context.Context, id string, payload T) Result[T] {
	c.begin()

	if id == "" {
		return failed[T](common.ErrEmptyID, c.fail(ctx, "memperbarui", common.ErrEmptyID))
	}
	if c.def.Endpoints.Update == nil {
		return failed[T](ErrUnsupported, c.fail(ctx, "memperbarui", ErrUnsupported))
	}

	path, query := c.def.Endpoints.Update(c.def.Endpoints.Base, id)
	env, err := c.request(ctx, http.MethodPut, path, query, payload)
	if err != nil {
		return failed[T](err, c.fail(ctx, "memperbarui", err))
	}

	rec := payload
	if c.def.SetID != nil {
		c.def.SetID(&rec, id)
	}
	if c.def.UpdateReturnsRecord && env.HasData() {
		merged := rec
		if err := json.Unmarshal(env.Data, &merged); err == nil && c.def.ID(merged) == id {
			rec = merged
		}
	}

	stale := false
	c.finish(nil, func() {
		if i := c.indexOf(id); i >= 0 {
			c.items[i] = rec
			return
		}
		stale = true
	})
	if stale {
		c.log.Warn(ctx, "updated record not in local list", "id", id)
	}

	msg := fmt.Sprintf("%s berhasil diperbarui", c.def.Name)
	c.deps.Notifier.Success(msg)
	res := succeeded(rec, msg)
	res.Stale = stale
	return res
}

// Delete removes id on the backend and then from the list.
func (c *Collection[T]) Delete(ctx context.Context, id string) Result[T] {
	c.begin()

	if id == "" {
		return failed[T](common.ErrEmptyID, c.fail(ctx, "menghapus", common.ErrEmptyID))
	}
	if c.def.Endpoints.Delete == nil {
		return failed[T](ErrUnsupported, c.fail(ctx, "menghapus", ErrUnsupported))
	}

	path, query := c.def.Endpoints.Delete(c.def.Endpoints.Base, id)
	if _, err := c.request(ctx, http.MethodDelete, path, query, nil); err != nil {
		return failed[T](err, c.fail(ctx, "menghapus", err))
	}

	var removed T
	c.finish(nil, func() {
		if i := c.indexOf(id); i >= 0 {
			removed = c.items[i]
			c.items = slices.Delete(c.items, i, i+1)
		}
	})

	msg := fmt.Sprintf("%s berhasil dihapus", c.def.Name)
	c.deps.Notifier.Success(msg)
	return succeeded(removed, msg)
}

// Transition is a status change such as approve or done.
type Transition[T any] struct {
	// Action is the verb phrase used in the failure message.
	Action string
	// Success is the message reported when the backend accepts the change.
	Success string
	Method  string
	// Path is relative to the entity base path.
	Path  string
	Query url.Values
	Body  any
	// ID is the local record the change applies to.
	ID string
	// FromResponse takes the updated record from the response data.
	FromResponse bool
	// Apply changes the local record when FromResponse is false.
	Apply func(*T)
}

// Transition performs t and reconciles the local record. A miss on a
// non-empty ID is reported as Stale.
func (c *Collection[T]) Transition(ctx context.Context, t Transition[T]) Result[T] {
	c.begin()

	method := t.Method
	if method == "" {
		method = http.MethodPut
	}

	env, err := c.request(ctx, method, c.def.Endpoints.Base+t.Path, t.Query, t.Body)
	var fromServer T
	hasRecord := false
	if err == nil && t.FromResponse && env.HasData() {
		if fromServer, err = decode[T](env); err == nil {
			hasRecord = c.def.ID(fromServer) != ""
		}
	}
	if err != nil {
		return failed[T](err, c.fail(ctx, t.Action, err))
	}

	id := t.ID
	if hasRecord && id == "" {
		id = c.def.ID(fromServer)
	}

	var rec T
	stale := false
	c.finish(nil, func() {
		i := -1
		if id != "" {
			i = c.indexOf(id)
		}
		switch {
		case i < 0:
			stale = id != ""
			rec = fromServer
		case hasRecord:
			c.items[i] = fromServer
			rec = fromServer
		case t.Apply != nil:
			updated := c.items[i]
			t.Apply(&updated)
			c.items[i] = updated
			rec = updated
		default:
			rec = c.items[i]
		}
	})
	if stale {
		c.log.Warn(ctx, "transitioned record not in local list", "id", id, "action", t.Action)
	}

	msg := t.Success
	if msg == "" {
		msg = fmt.Sprintf("%s berhasil diperbarui", c.def.Name)
	}
	c.deps.Notifier.Success(msg)
	res := succeeded(rec, msg)
	res.Stale = stale
	return res
}

// Modify changes the local record id without a backend call. It reports
// whether the record was found.
func (c *Collection[T]) Modify(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	return true
}

// Remove drops the local records with the given identifiers without a
// backend call and returns how many were removed.
func (c *Collection[T]) Remove(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(v T) bool { return slices.Contains(ids, c.def.ID(v)) })
	return before - len(c.items)
}
