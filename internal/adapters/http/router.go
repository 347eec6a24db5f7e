// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Tasks         *handlers.TaskHandler
	Collaboration *handlers.CollaborationHandler
	Attachments   *handlers.AttachmentHandler
	Tags          *handlers.TagHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. authenticate guards
// every /api/v1 route except the /auth endpoints; health stays public.
func NewRouter(
	h Handlers,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	if len(middlewares) > 0 {
		r.Use(middleware.Chain(middlewares...))
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users", h.Users.ListUsers)
			r.Get("/users/me", h.Users.Me)
			r.Get("/users/{id}", h.Users.GetUser)
			r.Patch("/users/{id}", h.Users.UpdateUser)

			r.Get("/tasks", h.Tasks.ListTasks)
			r.Post("/tasks", h.Tasks.CreateTask)
			r.Post("/tasks/bulk/status", h.Tasks.BulkChangeStatus)
			r.Get("/tasks/{id}", h.Tasks.GetTask)
			r.Patch("/tasks/{id}", h.Tasks.UpdateTask)
			r.Delete("/tasks/{id}", h.Tasks.DeleteTask)

			// Lifecycle.
			r.Post("/tasks/{id}/status", h.Tasks.ChangeStatus)
			r.Post("/tasks/{id}/assign", h.Tasks.AssignTask)
			r.Post("/tasks/{id}/unassign", h.Tasks.UnassignTask)
			r.Post("/tasks/{id}/archive", h.Tasks.ArchiveTask)
			r.Post("/tasks/{id}/unarchive", h.Tasks.UnarchiveTask)
			r.Get("/tasks/{id}/transitions", h.Tasks.Transitions)
			r.Get("/tasks/{id}/activity", h.Tasks.ListActivity)

			r.Get("/tasks/{id}/comments", h.Collaboration.ListComments)
			r.Post("/tasks/{id}/comments", h.Collaboration.AddComment)
			r.Get("/tasks/{id}/time-logs", h.Collaboration.ListTimeLogs)
			r.Post("/tasks/{id}/time-logs", h.Collaboration.LogTime)

			r.Get("/tasks/{id}/attachments", h.Attachments.ListAttachments)
			r.Post("/tasks/{id}/attachments", h.Attachments.UploadAttachment)
			r.Get("/attachments/{id}", h.Attachments.GetAttachment)
			r.Get("/attachments/{id}/content", h.Attachments.DownloadAttachment)
			r.Delete("/attachments/{id}", h.Attachments.DeleteAttachment)

			r.Get("/tags", h.Tags.ListTags)
			r.Post("/tags", h.Tags.CreateTag)
			r.Patch("/tags/{id}", h.Tags.RenameTag)
			r.Delete("/tags/{id}", h.Tags.DeleteTag)
		})
	})

	return r
}
