package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/api/transport"
	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/pkg/httpcontext"
	subtaskUC "github.com/focusdo/backend/usecase/subtask"
)

type SubTaskHandler struct {
	baseHandler
	uc *subtaskUC.UseCase
}

func NewSubTaskHandler(uc *subtaskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SubTaskHandler {
	return &SubTaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List subtasks under the caller's tasks
// @Tags subtasks
// @Router /subtasks/ [get]
func (h *SubTaskHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtasks, err := h.uc.List(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, subtasks)
}

// @Summary Create a subtask under an owned task
// @Tags subtasks
// @Router /subtasks/ [post]
func (h *SubTaskHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SubTaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	subtask := &domain.SubTask{
		Title:     req.Title,
		TaskID:    req.Task,
		Completed: req.Completed,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, subtask)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Retrieve a subtask
// @Tags subtasks
// @Router /subtasks/{id}/ [get]
func (h *SubTaskHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtask, err := h.uc.Get(stdCtx, userID, h.pathID(ctx))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, subtask)
}

// @Summary Update a subtask (partial)
// @Tags subtasks
// @Router /subtasks/{id}/ [patch]
func (h *SubTaskHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SubTaskUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	patch := subtaskUC.Patch{
		Title:     req.Title,
		Completed: req.Completed,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, userID, h.pathID(ctx), patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a subtask
// @Tags subtasks
// @Router /subtasks/{id}/ [delete]
func (h *SubTaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, userID, h.pathID(ctx)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
