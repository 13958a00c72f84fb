package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/api/transport"
	"github.com/focusdo/backend/pkg/httpcontext"
	authUC "github.com/focusdo/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register a new account
// @Tags auth
// @Router /auth/register/ [post]
func (h *AuthHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.RegisterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Register(stdCtx, req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// @Summary Obtain an access/refresh token pair
// @Tags auth
// @Router /auth/login/ [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Username == "" || req.Password == "" {
		h.respondInvalid(ctx, "username and password are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pair, err := h.uc.Login(stdCtx, req.Username, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.TokenResponse{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		ExpiresIn: pair.ExpiresIn,
	})
}

// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Router /auth/token/refresh/ [post]
func (h *AuthHandler) Refresh(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Refresh == "" {
		h.respondInvalid(ctx, "refresh token is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pair, err := h.uc.Refresh(stdCtx, req.Refresh)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.TokenResponse{
		Access:    pair.Access,
		ExpiresIn: pair.ExpiresIn,
	})
}

// @Summary Revoke the refresh session
// @Tags auth
// @Router /auth/logout/ [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Refresh == "" {
		h.respondInvalid(ctx, "refresh token is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, req.Refresh); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
