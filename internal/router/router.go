package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/focusdo/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Task    *apiHandler.TaskHandler
	SubTask *apiHandler.SubTaskHandler
	Focus   *apiHandler.FocusHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/auth/register/", handlers.Auth.Register)
	r.POST("/auth/login/", handlers.Auth.Login)
	r.POST("/auth/token/refresh/", handlers.Auth.Refresh)
	r.POST("/auth/logout/", authMiddleware(handlers.Auth.Logout))

	// Task routes
	r.GET("/tasks/", authMiddleware(handlers.Task.List))
	r.POST("/tasks/", authMiddleware(handlers.Task.Create))
	r.GET("/tasks/{id}/", authMiddleware(handlers.Task.Get))
	r.PUT("/tasks/{id}/", authMiddleware(handlers.Task.Update))
	r.PATCH("/tasks/{id}/", authMiddleware(handlers.Task.Update))
	r.DELETE("/tasks/{id}/", authMiddleware(handlers.Task.Delete))

	// SubTask routes
	r.GET("/subtasks/", authMiddleware(handlers.SubTask.List))
	r.POST("/subtasks/", authMiddleware(handlers.SubTask.Create))
	r.GET("/subtasks/{id}/", authMiddleware(handlers.SubTask.Get))
	r.PUT("/subtasks/{id}/", authMiddleware(handlers.SubTask.Update))
	r.PATCH("/subtasks/{id}/", authMiddleware(handlers.SubTask.Update))
	r.DELETE("/subtasks/{id}/", authMiddleware(handlers.SubTask.Delete))

	// Focus session routes (create/list only; sessions are immutable)
	r.GET("/focus/", authMiddleware(handlers.Focus.List))
	r.POST("/focus/", authMiddleware(handlers.Focus.Create))

	return r
}
