package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/api/transport"
	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data))
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), message, nil))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)

	var dErr *domain.Error
	if errors.As(err, &dErr) {
		h.respondJSON(ctx, status, transport.NewError(code, dErr.Message, dErr.Fields))
		return
	}
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

// userID pulls the authenticated caller set by the JWT middleware. An
// empty result means the response has already been written.
func (h baseHandler) userID(ctx *fasthttp.RequestCtx) string {
	userID := string(ctx.Request.Header.Peek("X-User-ID"))
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing user identity", nil))
	}
	return userID
}

func (h baseHandler) pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, string(domain.ErrCodeUnauthorized)
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict, string(domain.ErrCodeConflict)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
