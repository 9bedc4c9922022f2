package api

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/partitura/partitura_admin/internal/session"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const (
	loginPath   = "auth/login/"
	refreshPath = "auth/token/refresh/"

	contentTypeJSON = "application/json"
)

// Client is the single point of contact with the remote API. It attaches
// the stored bearer credential to every request and runs the one-shot
// refresh protocol on authentication expiry.
type Client struct {
	base    string
	http    *fasthttp.Client
	session *session.Session

	// refreshMu serializes refresh attempts across all pending requests.
	// A request that lost the race re-uses the token the winner obtained
	// instead of issuing its own refresh call.
	refreshMu sync.Mutex
}

func New(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		session: sess,
	}
}

// Session exposes the session for callers that need identity or expiry.
func (c *Client) Session() *session.Session {
	return c.session
}

// Login exchanges credentials for a token pair and stores it together with
// a user record built from the credentials. Invalid credentials surface as
// an *Error 401 and are never retried.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	respBody, status, err := c.roundTrip(ctx, fasthttp.MethodPost, loginPath, nil, contentTypeJSON, body, "")
	if err != nil {
		return nil, err
	}
	if status != fasthttp.StatusOK {
		return nil, &Error{StatusCode: status, Body: string(respBody)}
	}

	var auth model.AuthResponse
	if err := json.Unmarshal(respBody, &auth); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}

	// The login endpoint does not always include a user record. Build a
	// basic one from the credentials when it is absent, as the browser
	// client did.
	if auth.User == nil {
		auth.User = &model.User{ID: 1, Username: creds.Username}
	}
	c.session.SetTokens(auth.Access, auth.Refresh, auth.User)

	log.Info().Str("username", creds.Username).Msg("Logged in")
	return &auth, nil
}

// Logout clears all stored session state. Idempotent, never fails.
func (c *Client) Logout() {
	c.session.Clear()
}

// IsAuthenticated reports whether an access token is currently stored.
func (c *Client) IsAuthenticated() bool {
	return c.session.IsAuthenticated()
}

// do issues an authenticated request and runs the refresh protocol on 401.
// The retry is capped at one attempt per original request so an expired
// refresh token cannot cause a refresh loop.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, contentType string, body []byte) ([]byte, error) {
	access, generation := c.session.AccessToken()

	respBody, status, err := c.roundTrip(ctx, method, path, query, contentType, body, access)
	if err != nil {
		return nil, err
	}

	if status == fasthttp.StatusUnauthorized {
		origErr := &Error{StatusCode: status, Body: string(respBody)}

		if !c.refreshAccess(ctx, generation) {
			c.Logout()
			return nil, origErr
		}

		access, _ = c.session.AccessToken()
		respBody, status, err = c.roundTrip(ctx, method, path, query, contentType, body, access)
		if err != nil {
			return nil, err
		}
		if status == fasthttp.StatusUnauthorized {
			c.Logout()
			return nil, &Error{StatusCode: status, Body: string(respBody)}
		}
	}

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, &Error{StatusCode: status, Body: string(respBody)}
	}
	return respBody, nil
}

// refreshAccess exchanges the refresh token for a new access token. It
// returns true when the session now holds a usable token, either because
// this call refreshed it or because a concurrent request already did.
func (c *Client) refreshAccess(ctx context.Context, generationUsed uint64) bool {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if _, generation := c.session.AccessToken(); generation != generationUsed {
		// Another request refreshed while we waited for the lock.
		return true
	}

	refresh := c.session.RefreshToken()
	if refresh == "" {
		return false
	}

	body, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return false
	}

	respBody, status, err := c.roundTrip(ctx, fasthttp.MethodPost, refreshPath, nil, contentTypeJSON, body, "")
	if err != nil || status != fasthttp.StatusOK {
		log.Warn().Int("status", status).Err(err).Msg("Token refresh failed")
		return false
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil || result.Access == "" {
		return false
	}

	c.session.SetAccess(result.Access)
	log.Debug().Msg("Access token refreshed")
	return true
}

// roundTrip issues one HTTP call. The bearer credential is attached only
// when non-empty; transport failures are returned unmodified.
func (c *Client) roundTrip(ctx context.Context, method, path string, query map[string]string, contentType string, body []byte, bearer string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.base + "/" + strings.TrimLeft(path, "/"))
	for key, value := range query {
		req.URI().QueryArgs().Set(key, value)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if bearer != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+bearer)
	}
	if contentType != "" {
		req.Header.SetContentType(contentType)
	}
	if body != nil {
		req.SetBody(body)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		log.Debug().
			Str("method", method).
			Str("path", path).
			Str("requestId", requestID).
			Err(err).
			Msg("Request failed")
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	log.Debug().
		Str("method", method).
		Str("path", path).
		Str("requestId", requestID).
		Int("status", status).
		Msg("Request completed")

	// The response buffer is pooled; copy before release.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, status, nil
}

// getJSON fetches path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	body, err := c.do(ctx, fasthttp.MethodGet, path, query, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// sendJSON issues method with a JSON-encoded payload and decodes the
// response into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	respBody, err := c.do(ctx, method, path, nil, contentTypeJSON, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// del issues a DELETE and discards the response body.
func (c *Client) del(ctx context.Context, path string) error {
	_, err := c.do(ctx, fasthttp.MethodDelete, path, nil, "", nil)
	return err
}
