package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* *** fakes *** */

type rec struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

type fakeClient struct {
	mu      sync.Mutex
	reqs    []client.Request
	respond func(req client.Request) (*client.Envelope, error)
}

func (f *fakeClient) Login(context.Context, string, string) (string, error) { return "", nil }
func (f *fakeClient) Logout(context.Context, string) error                 { return nil }
func (f *fakeClient) Download(context.Context, client.Request) (*client.Blob, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) Do(_ context.Context, req client.Request) (*client.Envelope, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	if f.respond == nil {
		return &client.Envelope{Status: 200}, nil
	}
	return f.respond(req)
}

func (f *fakeClient) last() client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reqs[len(f.reqs)-1]
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func envelope(t *testing.T, data any) *client.Envelope {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &client.Envelope{Status: 200, Message: "ok", Data: raw}
}

func apiErr(code int, msg string) error {
	return &client.APIError{StatusCode: code, Message: msg, Err: common.ErrServer}
}

func recEntity() Entity[rec] {
	return Entity[rec]{
		Name: "Rec",
		Endpoints: Endpoints{
			Base:   "/api/rec",
			Detail: QueryID("/detail"),
			Update: PathID("/update"),
			Delete: PathID("/delete"),
		},
		ID:    func(r rec) string { return r.ID },
		SetID: func(r *rec, id string) { r.ID = id },
	}
}

func newRecs(t *testing.T, fc *fakeClient, def Entity[rec]) (*Collection[rec], *recNotifier) {
	t.Helper()
	n := &recNotifier{}
	return New(Deps{Client: fc, Tokens: staticToken("tok"), Notifier: n}, def), n
}

func seed(t *testing.T, c *Collection[rec], fc *fakeClient, items []rec) {
	t.Helper()
	prev := fc.respond
	fc.respond = func(client.Request) (*client.Envelope, error) { return envelope(t, items), nil }
	require.True(t, c.FetchAll(context.Background()).OK)
	fc.respond = prev
}

/* *** fetch *** */

func TestFetchAll_ReplacesItemsAndSendsToken(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1"}, {ID: "2"}})

	req := fc.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/rec/all", req.Path)
	assert.Equal(t, "tok", req.Token)
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, []string{"Berhasil mengambil 2 Rec"}, n.successes)
	assert.NoError(t, c.Err())
	assert.False(t, c.Loading())
}

func TestFetchAll_EmptyPayloads(t *testing.T) {
	for name, env := range map[string]*client.Envelope{
		"absent data": {Status: 200},
		"null data":   {Status: 200, Data: json.RawMessage("null")},
		"empty array": {Status: 200, Data: json.RawMessage("[]")},
	} {
		t.Run(name, func(t *testing.T) {
			fc := &fakeClient{}
			c, _ := newRecs(t, fc, recEntity())
			seed(t, c, fc, []rec{{ID: "old"}})

			fc.respond = func(client.Request) (*client.Envelope, error) { return env, nil }
			res := c.FetchAll(context.Background())

			require.True(t, res.OK)
			assert.NoError(t, res.Err)
			assert.NotNil(t, res.Value)
			assert.Empty(t, res.Value)
			assert.Equal(t, []rec{}, c.Items())
			assert.NoError(t, c.Err())
		})
	}
}

func TestFetchAll_DataListFallback(t *testing.T) {
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return &client.Envelope{Status: 200, DataList: json.RawMessage(`[{"id":"a"}]`)}, nil
	}}
	c, _ := newRecs(t, fc, recEntity())

	res := c.FetchAll(context.Background())
	require.True(t, res.OK)
	assert.Equal(t, []rec{{ID: "a"}}, c.Items())
}

func TestFetchAll_FailureKeepsItems(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1", Name: "keep"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, apiErr(500, "boom") }
	res := c.FetchAll(context.Background())

	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrServer)
	assert.Equal(t, "Gagal mengambil data Rec: boom", res.Message)
	assert.Equal(t, []string{"Gagal mengambil data Rec: boom"}, n.errors)
	assert.Equal(t, []rec{{ID: "1", Name: "keep"}}, c.Items())
	assert.ErrorIs(t, c.Err(), common.ErrServer)
}

func TestFetchAll_MalformedPayload(t *testing.T) {
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return &client.Envelope{Status: 200, Data: json.RawMessage(`{"not":"a list"}`)}, nil
	}}
	c, _ := newRecs(t, fc, recEntity())

	res := c.FetchAll(context.Background())
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrBadResponse)
}

func TestFetchAll_DuplicateIDsCollapse(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1", Name: "a"}, {ID: "2"}, {ID: "1", Name: "b"}})

	assert.Equal(t, []rec{{ID: "1", Name: "b"}, {ID: "2"}}, c.Items())
}

func TestFetchFrom_Suffix(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())

	res := c.FetchFrom(context.Background(), "/vehicle-out", url.Values{"page": {"1"}})
	require.True(t, res.OK)
	assert.Equal(t, "/api/rec/vehicle-out", fc.last().Path)
	assert.Equal(t, "1", fc.last().Query.Get("page"))
}

func TestItems_ReturnsCopy(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1", Name: "x"}})

	items := c.Items()
	items[0].Name = "changed"
	assert.Equal(t, "x", c.Items()[0].Name)
}

/* *** fetch by id *** */

func TestFetchByID(t *testing.T) {
	fc := &fakeClient{respond: func(req client.Request) (*client.Envelope, error) {
		return envelope(t, rec{ID: req.Query.Get("id"), Name: "one"}), nil
	}}
	c, _ := newRecs(t, fc, recEntity())

	res := c.FetchByID(context.Background(), "7")
	require.True(t, res.OK)
	assert.Equal(t, rec{ID: "7", Name: "one"}, res.Value)
	assert.Equal(t, "/api/rec/detail", fc.last().Path)
	assert.Empty(t, c.Items(), "detail is not cached")
}

func TestFetchByID_EmptyID(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())

	res := c.FetchByID(context.Background(), "")
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrEmptyID)
	assert.Empty(t, fc.reqs)
	assert.Len(t, n.errors, 1)
}

func TestFetchByID_NoData(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())

	res := c.FetchByID(context.Background(), "x")
	assert.ErrorIs(t, res.Err, common.ErrNotFound)
}

func TestFetchByID_Unsupported(t *testing.T) {
	def := recEntity()
	def.Endpoints.Detail = nil
	c, _ := newRecs(t, &fakeClient{}, def)

	res := c.FetchByID(context.Background(), "x")
	assert.ErrorIs(t, res.Err, ErrUnsupported)
}

/* *** create *** */

func TestCreate_FullRecordFromServer(t *testing.T) {
	fc := &fakeClient{respond: func(req client.Request) (*client.Envelope, error) {
		sent := req.Body.(rec)
		sent.ID = "srv-1"
		return envelope(t, sent), nil
	}}
	c, n := newRecs(t, fc, recEntity())

	res := c.Create(context.Background(), rec{ID: "client-guess", Name: "n"})

	require.True(t, res.OK)
	assert.Equal(t, "srv-1", res.Value.ID)
	assert.Equal(t, []rec{{ID: "srv-1", Name: "n"}}, c.Items())
	assert.Equal(t, "/api/rec/add", fc.last().Path)
	assert.Equal(t, http.MethodPost, fc.last().Method)
	assert.Equal(t, []string{"Rec berhasil ditambahkan"}, n.successes)
}

func TestCreate_IDFieldMergedIntoPayload(t *testing.T) {
	def := recEntity()
	def.CreatedIDField = "recId"
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return envelope(t, map[string]any{"recId": "R-9", "message": "ok"}), nil
	}}
	c, _ := newRecs(t, fc, def)

	res := c.Create(context.Background(), rec{Name: "x", Status: 1})
	require.True(t, res.OK)
	assert.Equal(t, []rec{{ID: "R-9", Name: "x", Status: 1}}, c.Items())
}

func TestCreate_NumericIDField(t *testing.T) {
	def := recEntity()
	def.CreatedIDField = "id"
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return &client.Envelope{Status: 200, Data: json.RawMessage(`{"id": 42}`)}, nil
	}}
	c, _ := newRecs(t, fc, def)

	res := c.Create(context.Background(), rec{})
	require.True(t, res.OK)
	assert.Equal(t, "42", res.Value.ID)
}

func TestCreate_MissingIdentifier(t *testing.T) {
	def := recEntity()
	def.CreatedIDField = "recId"
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return envelope(t, map[string]any{"message": "ok"}), nil
	}}
	c, _ := newRecs(t, fc, def)

	res := c.Create(context.Background(), rec{ID: "mine"})
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrBadResponse)
	assert.Empty(t, c.Items())
}

func TestCreate_RejectedKeepsItems(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, apiErr(409, "duplicate key") }
	res := c.Create(context.Background(), rec{Name: "dup"})

	assert.False(t, res.OK)
	assert.Equal(t, "Gagal menambah Rec: duplicate key", res.Message)
	assert.Equal(t, []rec{{ID: "1"}}, c.Items())
	assert.Len(t, n.errors, 1)
}

func TestCreate_ExistingIDReplaced(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "1", Name: "old"}, {ID: "2"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return envelope(t, rec{ID: "1", Name: "new"}), nil }
	require.True(t, c.Create(context.Background(), rec{}).OK)

	assert.Equal(t, []rec{{ID: "1", Name: "new"}, {ID: "2"}}, c.Items())
}

/* *** update *** */

func TestUpdate_ReplacesInPlace(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}, {ID: "b", Name: "old"}, {ID: "c"}})

	res := c.Update(context.Background(), "b", rec{Name: "new"})

	require.True(t, res.OK)
	assert.False(t, res.Stale)
	assert.Equal(t, []rec{{ID: "a"}, {ID: "b", Name: "new"}, {ID: "c"}}, c.Items())
	assert.Equal(t, "/api/rec/update/b", fc.last().Path)
	assert.Equal(t, http.MethodPut, fc.last().Method)
}

func TestUpdate_OverlaysReturnedRecord(t *testing.T) {
	fc := &fakeClient{}
	def := recEntity()
	def.UpdateReturnsRecord = true
	c, _ := newRecs(t, fc, def)
	seed(t, c, fc, []rec{{ID: "a", Name: "old"}, {ID: "b"}})

	fc.respond = func(client.Request) (*client.Envelope, error) {
		return envelope(t, map[string]any{"id": "a", "status": 2}), nil
	}
	res := c.Update(context.Background(), "a", rec{Name: "new"})
	require.True(t, res.OK)
	assert.Equal(t, rec{ID: "a", Name: "new", Status: 2}, res.Value)
	assert.Equal(t, []rec{{ID: "a", Name: "new", Status: 2}, {ID: "b"}}, c.Items())

	fc.respond = func(client.Request) (*client.Envelope, error) {
		return envelope(t, map[string]any{"id": "other", "status": 9}), nil
	}
	res = c.Update(context.Background(), "b", rec{Name: "kept"})
	require.True(t, res.OK)
	assert.Equal(t, rec{ID: "b", Name: "kept"}, c.Items()[1])

	fc.respond = nil
	res = c.Update(context.Background(), "b", rec{Name: "plain"})
	require.True(t, res.OK)
	assert.Equal(t, rec{ID: "b", Name: "plain"}, c.Items()[1])
}

func TestUpdate_MissIsStale(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}})

	res := c.Update(context.Background(), "zzz", rec{Name: "x"})

	assert.True(t, res.OK)
	assert.True(t, res.Stale)
	assert.Equal(t, []rec{{ID: "a"}}, c.Items())
}

func TestUpdate_FailureKeepsItems(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a", Name: "x"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, common.ErrUnavailable }
	res := c.Update(context.Background(), "a", rec{Name: "y"})

	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrUnavailable)
	assert.Equal(t, []rec{{ID: "a", Name: "x"}}, c.Items())
}

func TestUpdate_EmptyID(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())

	assert.ErrorIs(t, c.Update(context.Background(), "", rec{}).Err, common.ErrEmptyID)
	assert.Empty(t, fc.reqs)
}

/* *** delete *** */

func TestDelete(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	res := c.Delete(context.Background(), "b")
	require.True(t, res.OK)
	assert.Equal(t, "b", res.Value.ID)
	assert.Equal(t, []rec{{ID: "a"}, {ID: "c"}}, c.Items())
	assert.Equal(t, http.MethodDelete, fc.last().Method)
	assert.Equal(t, "/api/rec/delete/b", fc.last().Path)
}

func TestDelete_FailureKeepsItems(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, apiErr(404, "") }
	res := c.Delete(context.Background(), "a")
	assert.False(t, res.OK)
	assert.Equal(t, []rec{{ID: "a"}}, c.Items())
	assert.Error(t, c.Err())
}

func TestDelete_Unsupported(t *testing.T) {
	def := recEntity()
	def.Endpoints.Delete = nil
	c, _ := newRecs(t, &fakeClient{}, def)
	assert.ErrorIs(t, c.Delete(context.Background(), "a").Err, ErrUnsupported)
}

/* *** transitions *** */

func TestTransition_Apply(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}, {ID: "b"}})

	res := c.Transition(context.Background(), Transition[rec]{
		Action:  "meng-approve",
		Success: "approved",
		Path:    "/approve",
		Body:    map[string]any{"id": "b"},
		ID:      "b",
		Apply:   func(r *rec) { r.Status = 2 },
	})

	require.True(t, res.OK)
	assert.Equal(t, 2, res.Value.Status)
	assert.Equal(t, []rec{{ID: "a"}, {ID: "b", Status: 2}}, c.Items())
	assert.Equal(t, http.MethodPut, fc.last().Method)
	assert.Equal(t, "/api/rec/approve", fc.last().Path)
	assert.Contains(t, n.successes, "approved")
}

func TestTransition_FromResponse(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a", Name: "x"}})

	fc.respond = func(client.Request) (*client.Envelope, error) {
		return envelope(t, rec{ID: "a", Name: "x", Status: 3}), nil
	}
	res := c.Transition(context.Background(), Transition[rec]{Path: "/done/a", ID: "a", FromResponse: true})

	require.True(t, res.OK)
	assert.Equal(t, []rec{{ID: "a", Name: "x", Status: 3}}, c.Items())
}

func TestTransition_FailureKeepsItems(t *testing.T) {
	fc := &fakeClient{}
	c, n := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}})

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, apiErr(400, "") }
	res := c.Transition(context.Background(), Transition[rec]{
		Action: "meng-approve", Path: "/approve", ID: "a",
		Apply: func(r *rec) { r.Status = 9 },
	})

	assert.False(t, res.OK)
	assert.Equal(t, []rec{{ID: "a"}}, c.Items())
	assert.NotEmpty(t, res.Message)
	assert.Len(t, n.errors, 1)
}

func TestTransition_MissIsStale(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}})

	res := c.Transition(context.Background(), Transition[rec]{Path: "/done/q", ID: "q", Apply: func(r *rec) { r.Status = 1 }})
	assert.True(t, res.OK)
	assert.True(t, res.Stale)
	assert.Equal(t, []rec{{ID: "a"}}, c.Items())
}

/* *** local helpers *** */

func TestModifyAndRemove(t *testing.T) {
	fc := &fakeClient{}
	c, _ := newRecs(t, fc, recEntity())
	seed(t, c, fc, []rec{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.True(t, c.Modify("b", func(r *rec) { r.Name = "m" }))
	assert.False(t, c.Modify("z", func(r *rec) {}))

	got, ok := c.Find("b")
	require.True(t, ok)
	assert.Equal(t, "m", got.Name)

	assert.Equal(t, 2, c.Remove("a", "c", "z"))
	assert.Equal(t, []rec{{ID: "b", Name: "m"}}, c.Items())
}

/* *** concurrency *** */

func TestConcurrentOperations_LoadingCounter(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		started <- struct{}{}
		<-release
		return &client.Envelope{Status: 200, Data: json.RawMessage(`[]`)}, nil
	}}
	c, _ := newRecs(t, fc, recEntity())

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.FetchAll(context.Background())
		}()
	}
	<-started
	<-started
	assert.True(t, c.Loading())

	close(release)
	wg.Wait()
	assert.False(t, c.Loading())
}

/* *** call *** */

func TestCall(t *testing.T) {
	fc := &fakeClient{respond: func(client.Request) (*client.Envelope, error) {
		return &client.Envelope{Status: 200, Data: json.RawMessage(`5`)}, nil
	}}
	n := &recNotifier{}
	deps := Deps{Client: fc, Tokens: staticToken("t"), Notifier: n}

	res := Call[int](context.Background(), deps, "menghitung", client.Request{Method: http.MethodGet, Path: "/x"})
	require.True(t, res.OK)
	assert.Equal(t, 5, res.Value)
	assert.Equal(t, "t", fc.last().Token)

	fc.respond = func(client.Request) (*client.Envelope, error) { return nil, apiErr(500, "down") }
	res = Call[int](context.Background(), deps, "menghitung", client.Request{Path: "/x"})
	assert.False(t, res.OK)
	assert.Equal(t, "Gagal menghitung: down", res.Message)
	assert.Equal(t, []string{"Gagal menghitung: down"}, n.errors)
}

func TestDiscardNotifier(t *testing.T) {
	Discard.Success("x")
	Discard.Error("y")
}
