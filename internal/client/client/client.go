package client

import (
	"context"
	"encoding/json"
	"net/url"
)

// Client is the transport contract the session and the collection stores
// use to talk to the SITRACK backend.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout tells the backend the token is no longer in use.
	Logout(ctx context.Context, token string) error
	// Do performs an authenticated JSON call and returns the decoded envelope.
	Do(ctx context.Context, req Request) (*Envelope, error)
	// Download performs a call whose successful response is a binary blob.
	Download(ctx context.Context, req Request) (*Blob, error)
}

// Request describes one backend call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
}

// Envelope is the uniform response wrapper of the backend.
type Envelope struct {
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
	Data      json.RawMessage `json:"data"`
	DataList  json.RawMessage `json:"dataList,omitempty"`
	Columns   []string        `json:"columns,omitempty"`
}

// HasData reports whether the envelope carries a non-null data field.
func (e *Envelope) HasData() bool {
	return e != nil && len(e.Data) > 0 && string(e.Data) != "null"
}

// Blob is a binary response body together with its content type.
type Blob struct {
	ContentType string
	Filename    string
	Data        []byte
}

// DecodeData unmarshals the envelope data into T. A missing or null data
// field yields the zero value of T.
func DecodeData[T any](env *Envelope) (T, error) {
	var v T
	if !env.HasData() {
		return v, nil
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, err
	}
	return v, nil
}
