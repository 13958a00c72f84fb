package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/api/transport"
	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/pkg/httpcontext"
	taskUC "github.com/focusdo/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the caller's tasks
// @Tags tasks
// @Router /tasks/ [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Create a task
// @Tags tasks
// @Router /tasks/ [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Retrieve a task
// @Tags tasks
// @Router /tasks/{id}/ [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Get(stdCtx, userID, h.pathID(ctx))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Update a task (partial)
// @Tags tasks
// @Router /tasks/{id}/ [patch]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.TaskUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	patch := taskUC.Patch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
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

// @Summary Delete a task and its subtasks
// @Tags tasks
// @Router /tasks/{id}/ [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
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
