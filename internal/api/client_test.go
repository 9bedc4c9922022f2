package api

import (
	"context"
	"sync"
	"testing"

	"github.com/partitura/partitura_admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestClient_Login_ShouldStoreTokensAndUser(t *testing.T) {
	// given
	server := startFakeAPI(t)
	client := server.newTestClient(t, "", "")

	// when
	auth, err := client.Login(context.Background(), model.Credentials{Username: "admin", Password: "secret"})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "access-login", auth.Access)
	assert.Equal(t, "refresh-login", auth.Refresh)
	assert.Equal(t, "admin", auth.User.Username)
	assert.True(t, client.IsAuthenticated())

	// and logout clears tokens and user record
	client.Logout()
	assert.False(t, client.IsAuthenticated())
	assert.Empty(t, client.Session().RefreshToken())
	assert.Nil(t, client.Session().User())
}

func TestClient_Login_ShouldReturnErrorForInvalidCredentials(t *testing.T) {
	// given
	server := startFakeAPI(t)
	client := server.newTestClient(t, "", "")

	// when
	_, err := client.Login(context.Background(), model.Credentials{Username: "admin", Password: "wrong"})

	// then
	assert.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, client.IsAuthenticated())
}

func TestClient_Do_ShouldRefreshOnceAndRetryAfter401(t *testing.T) {
	// given a client holding an expired access token and a valid refresh token
	server := startFakeAPI(t)
	client := server.newTestClient(t, "stale", "refresh-0")

	// when
	themes, total, err := client.GetThemes(context.Background(), ListParams{})

	// then the request succeeds through one refresh and one retry
	assert.NoError(t, err)
	assert.Empty(t, themes)
	assert.Zero(t, total)
	assert.Equal(t, 1, server.refreshCount())
	assert.Equal(t, 2, server.themeCount())
	assert.True(t, client.IsAuthenticated())
}

func TestClient_Do_ShouldLogoutWhenRetryStillUnauthorized(t *testing.T) {
	// given a backend that rejects every access token
	server := startFakeAPI(t)
	server.setRejectAll(true)
	client := server.newTestClient(t, "stale", "refresh-0")

	// when
	_, _, err := client.GetThemes(context.Background(), ListParams{})

	// then the client gives up after a single refresh attempt
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 1, server.refreshCount())
	assert.False(t, client.IsAuthenticated())
}

func TestClient_Do_ShouldLogoutWithoutRefreshWhenRefreshTokenMissing(t *testing.T) {
	// given a session with no refresh token
	server := startFakeAPI(t)
	client := server.newTestClient(t, "stale", "")

	// when
	_, _, err := client.GetThemes(context.Background(), ListParams{})

	// then the original 401 surfaces and no refresh call was made
	assert.True(t, IsUnauthorized(err))
	assert.Zero(t, server.refreshCount())
	assert.False(t, client.IsAuthenticated())
}

func TestClient_Do_ShouldRefreshOnlyOnceForConcurrentRequests(t *testing.T) {
	// given several requests racing against the same expired token
	server := startFakeAPI(t)
	client := server.newTestClient(t, "stale", "refresh-0")

	// when
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = client.GetThemes(context.Background(), ListParams{})
		}(i)
	}
	wg.Wait()

	// then the loser requests reuse the winner's token
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, server.refreshCount())
}

func TestClient_Do_ShouldSurfaceServerErrorsWithoutRefresh(t *testing.T) {
	// given
	server := startFakeAPI(t)
	client := server.newTestClient(t, "access-0", "refresh-0")

	// when
	err := client.getJSON(context.Background(), "broken/", nil, &struct{}{})

	// then a non-401 failure is returned as-is
	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fasthttp.StatusInternalServerError, apiErr.StatusCode)
	assert.Zero(t, server.refreshCount())
	assert.True(t, client.IsAuthenticated())
}

func TestClient_Do_ShouldReturnContextErrorBeforeSending(t *testing.T) {
	// given
	server := startFakeAPI(t)
	client := server.newTestClient(t, "access-0", "refresh-0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// when
	_, _, err := client.GetThemes(ctx, ListParams{})

	// then
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, server.themeCount())
}
