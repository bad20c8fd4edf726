package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

// TokenSource supplies the bearer token for each call. session.View
// satisfies it.
type TokenSource interface {
	Token() string
}

// Deps are the collaborators shared by every collection.
type Deps struct {
	Client   client.Client
	Tokens   TokenSource
	Notifier Notifier
	Log      logging.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = Discard
	}
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	return d
}

// Token returns the current bearer token, "" without a TokenSource.
func (d Deps) Token() string {
	if d.Tokens == nil {
		return ""
	}
	return d.Tokens.Token()
}

// Do sends req with the current bearer token.
func (d Deps) Do(ctx context.Context, req client.Request) (*client.Envelope, error) {
	req.Token = d.Token()
	return d.Client.Do(ctx, req)
}

// Call performs a request outside any collection and decodes the envelope
// data into R. label names the action in the failure message.
func Call[R any](ctx context.Context, deps Deps, label string, req client.Request) Result[R] {
	deps = deps.withDefaults()

	env, err := deps.Do(ctx, req)
	var v R
	if err == nil {
		v, err = decode[R](env)
	}
	if err != nil {
		msg := fmt.Sprintf("Gagal %s: %s", label, describe(err))
		deps.Log.Warn(ctx, "call failed", "path", req.Path, "error", err)
		deps.Notifier.Error(msg)
		return failed[R](err, msg)
	}
	return succeeded(v, "")
}

// describe prefers the server's own message over the wrapped sentinel text.
func describe(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func decode[R any](env *client.Envelope) (R, error) {
	v, err := client.DecodeData[R](env)
	if err != nil {
		return v, fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	return v, nil
}

// decodeList reads a list payload from data, falling back to dataList. An
// absent or null payload is an empty list.
func decodeList[T any](env *client.Envelope) ([]T, error) {
	if env == nil {
		return []T{}, nil
	}
	raw := env.Data
	if !env.HasData() {
		raw = env.DataList
	}
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// rawID reads an identifier that the backend may send as a string or a
// number.
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
