package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/focusdo/backend/pkg/token"
)

func newManager() *token.Manager {
	return token.NewManager(token.Config{
		Secret:     "test-secret",
		Issuer:     "test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
}

func runRequest(t *testing.T, handler fasthttp.RequestHandler, authorization string, extraHeaders map[string]string) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	var req fasthttp.Request
	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI("/tasks/")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	for key, value := range extraHeaders {
		req.Header.Set(key, value)
	}
	ctx.Init(&req, nil, nil)
	handler(&ctx)
	return &ctx
}

func TestValidTokenInjectsUserID(t *testing.T) {
	tokens := newManager()
	access, err := tokens.GenerateAccess("user-123")
	require.NoError(t, err)

	var seenUserID string
	handler := JWTAuth(tokens, nil)(func(ctx *fasthttp.RequestCtx) {
		seenUserID = string(ctx.Request.Header.Peek("X-User-ID"))
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	ctx := runRequest(t, handler, "Bearer "+access, nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "user-123", seenUserID)
}

func TestMissingTokenRejected(t *testing.T) {
	handler := JWTAuth(newManager(), nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not run without a token")
	})

	ctx := runRequest(t, handler, "", nil)
	require.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestInvalidTokenRejected(t *testing.T) {
	handler := JWTAuth(newManager(), nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not run with a bad token")
	})

	ctx := runRequest(t, handler, "Bearer garbage", nil)
	require.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestRefreshTokenRejected(t *testing.T) {
	tokens := newManager()
	pair, err := tokens.GeneratePair("user-123")
	require.NoError(t, err)

	handler := JWTAuth(tokens, nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not accept a refresh token")
	})

	ctx := runRequest(t, handler, "Bearer "+pair.Refresh, nil)
	require.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestClientSuppliedUserIDStripped(t *testing.T) {
	tokens := newManager()
	access, err := tokens.GenerateAccess("user-123")
	require.NoError(t, err)

	var seenUserID string
	handler := JWTAuth(tokens, nil)(func(ctx *fasthttp.RequestCtx) {
		seenUserID = string(ctx.Request.Header.Peek("X-User-ID"))
	})

	runRequest(t, handler, "Bearer "+access, map[string]string{"X-User-ID": "user-spoofed"})
	require.Equal(t, "user-123", seenUserID)
}
