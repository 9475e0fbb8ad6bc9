package http

import (
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public and authenticated endpoints. The
// identity middleware only resolves the caller; each protected handler
// rejects anonymous requests itself.
func RegisterRoutes(
	r *gin.Engine,
	auth *service.AuthService,
	tokens *service.TokenService,
	tasks repository.TaskRepository,
	health *handlers.HealthHandler,
) {
	h := handlers.NewHandler(auth, tasks)

	// Health checks
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Identity(tokens))
	{
		// Auth
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)

		// User profile
		v1.GET("/me", h.Me)

		// Tasks
		v1.POST("/tasks", h.CreateTask)
		v1.GET("/tasks", h.ListTasks)
		v1.PATCH("/tasks/:id", h.UpdateTask)
		v1.DELETE("/tasks/:id", h.DeleteTask)
	}
}
