package api

import (
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/partitura/partitura_admin/internal/session"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// fakeAPI emulates the remote backend over an in-memory listener. Protected
// endpoints accept only the current access token, so expiring a token is a
// matter of rotating validAccess out from under the client.
type fakeAPI struct {
	ln *fasthttputil.InmemoryListener

	mu           sync.Mutex
	validAccess  string
	refreshToken string
	rejectAll    bool

	refreshCalls int
	themeCalls   int

	themesBody []byte
}

func startFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	s := &fakeAPI{
		ln:           fasthttputil.NewInmemoryListener(),
		validAccess:  "access-0",
		refreshToken: "refresh-0",
		themesBody:   []byte(`[]`),
	}

	server := &fasthttp.Server{Handler: s.handle}
	go func() {
		_ = server.Serve(s.ln)
	}()
	t.Cleanup(func() {
		_ = s.ln.Close()
	})
	return s
}

// newTestClient wires a client to the fake API through the in-memory
// listener, pre-loaded with the given token pair.
func (s *fakeAPI) newTestClient(t *testing.T, access, refresh string) *Client {
	t.Helper()

	sess := session.New(session.NewStore(t.TempDir()))
	if access != "" || refresh != "" {
		sess.SetTokens(access, refresh, &model.User{ID: 1, Username: "admin"})
	}

	client := New("http://partitura.test/api/v1", 0, sess)
	client.http.Dial = func(string) (net.Conn, error) {
		return s.ln.Dial()
	}
	return client
}

func (s *fakeAPI) setThemesBody(body []byte) {
	s.mu.Lock()
	s.themesBody = body
	s.mu.Unlock()
}

func (s *fakeAPI) setRejectAll(reject bool) {
	s.mu.Lock()
	s.rejectAll = reject
	s.mu.Unlock()
}

func (s *fakeAPI) refreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

func (s *fakeAPI) themeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themeCalls
}

func (s *fakeAPI) authorized(ctx *fasthttp.RequestCtx) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rejectAll {
		return false
	}
	return string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)) == "Bearer "+s.validAccess
}

func (s *fakeAPI) handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case path == "/api/v1/auth/login/":
		var creds model.Credentials
		if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil || creds.Password != "secret" {
			ctx.Error(`{"detail":"No active account found with the given credentials"}`, fasthttp.StatusUnauthorized)
			return
		}
		s.mu.Lock()
		s.validAccess = "access-login"
		s.refreshToken = "refresh-login"
		s.mu.Unlock()
		writeJSON(ctx, map[string]string{"access": "access-login", "refresh": "refresh-login"})

	case path == "/api/v1/auth/token/refresh/":
		var payload struct {
			Refresh string `json:"refresh"`
		}
		_ = json.Unmarshal(ctx.PostBody(), &payload)

		s.mu.Lock()
		s.refreshCalls++
		if payload.Refresh != s.refreshToken {
			s.mu.Unlock()
			ctx.Error(`{"detail":"Token is invalid or expired"}`, fasthttp.StatusUnauthorized)
			return
		}
		s.validAccess = "access-refreshed"
		s.mu.Unlock()
		writeJSON(ctx, map[string]string{"access": "access-refreshed"})

	case strings.HasPrefix(path, "/api/v1/themes/"):
		s.mu.Lock()
		s.themeCalls++
		s.mu.Unlock()
		if !s.authorized(ctx) {
			ctx.Error(`{"detail":"Given token not valid for any token type"}`, fasthttp.StatusUnauthorized)
			return
		}
		s.mu.Lock()
		body := s.themesBody
		s.mu.Unlock()
		ctx.SetContentType("application/json")
		ctx.SetBody(body)

	case strings.HasPrefix(path, "/api/v1/broken/"):
		ctx.Error(`{"detail":"internal error"}`, fasthttp.StatusInternalServerError)

	default:
		ctx.Error("Not Found", fasthttp.StatusNotFound)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, payload any) {
	body, _ := json.Marshal(payload)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
