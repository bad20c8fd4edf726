package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/logging"
	"github.com/google/uuid"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"

	// maxErrorMessage bounds a non-envelope error body kept as the message.
	maxErrorMessage = 200
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. A zero timeout
// leaves requests bounded only by ctx.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Discard()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "http"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
}

// Login posts the credentials. Any non-2xx status becomes
// common.ErrAuthentication; a transport failure becomes common.ErrUnavailable.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	env, err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.Message == "" {
				return "", common.ErrAuthentication
			}
			return "", fmt.Errorf("%w: %s", common.ErrAuthentication, apiErr.Message)
		}
		return "", err
	}

	data, err := DecodeData[loginData](env)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	if data.Token == "" {
		return "", fmt.Errorf("%w: no token in login response", common.ErrBadResponse)
	}
	return data.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	_, err := c.Do(ctx, Request{Method: http.MethodPost, Path: logoutPath, Token: token})
	return err
}

func (c *HTTPClient) Do(ctx context.Context, req Request) (*Envelope, error) {
	resp, err := c.send(ctx, req, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	env := &Envelope{}
	if len(bytes.TrimSpace(body)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(body, env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	return env, nil
}

func (c *HTTPClient) Download(ctx context.Context, req Request) (*Blob, error) {
	resp, err := c.send(ctx, req, "*/*")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", common.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	blob := &Blob{ContentType: resp.Header.Get("Content-Type"), Data: body}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			blob.Filename = params["filename"]
		}
	}
	return blob, nil
}

func (c *HTTPClient) send(ctx context.Context, req Request, accept string) (*http.Response, error) {
	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", accept)
	if req.Token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+req.Token)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", req.Method, "path", req.Path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	c.log.Debug(ctx, "request done",
		"method", req.Method, "path", req.Path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(started))
	return resp, nil
}

// newAPIError extracts the backend message from an error body when it is
// an envelope, and falls back to the raw text otherwise.
func newAPIError(code int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Err: mapStatus(code)}

	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
		return apiErr
	}
	apiErr.Message = truncate(strings.TrimSpace(string(body)), maxErrorMessage)
	return apiErr
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
