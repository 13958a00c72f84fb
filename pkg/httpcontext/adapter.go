package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/focusdo/backend/pkg/logger"
)

// Adapter converts fasthttp.RequestCtx into a stdlib context with a
// per-request deadline and a propagated request ID.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs a new Adapter using the provided timeout.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{
		timeout: timeout,
	}
}

// Attach creates a context with timeout derived from the adapter and
// echoes the request ID on the response.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := getRequestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set("X-Request-ID", reqID)

	return stdCtx, cancel
}

func getRequestID(ctx *fasthttp.RequestCtx) string {
	if ctx == nil {
		return uuid.NewString()
	}
	if header := string(ctx.Request.Header.Peek("X-Request-ID")); strings.TrimSpace(header) != "" {
		return header
	}
	return uuid.NewString()
}
