package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/pkg/httpcontext"
	focusUC "github.com/focusdo/backend/usecase/focus"
)

type FocusHandler struct {
	baseHandler
	uc *focusUC.UseCase
}

func NewFocusHandler(uc *focusUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FocusHandler {
	return &FocusHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the caller's focus sessions
// @Tags focus
// @Router /focus/ [get]
func (h *FocusHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sessions, err := h.uc.List(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, sessions)
}

// @Summary Log a focus session
// @Tags focus
// @Router /focus/ [post]
func (h *FocusHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	// The request body is intentionally ignored; owner and timestamp
	// are server-assigned.
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.Create(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, session)
}
