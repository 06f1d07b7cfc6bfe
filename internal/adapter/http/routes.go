package http

import (
	"productivity/internal/adapter/http/handlers"
	"productivity/internal/adapter/http/middleware"
	"productivity/internal/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *auth.TokenService,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	roleHandler *handlers.RoleHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	r.POST("/users/register", userHandler.Register)
	r.POST("/users/login", userHandler.Login)

	authorized := r.Group("", middleware.AuthMiddleware(tokens))
	{
		authorized.GET("/users/me", userHandler.Me)
		authorized.PUT("/users/me/update", userHandler.Update)
		authorized.DELETE("/users/me/delete", userHandler.Delete)
		authorized.GET("/users/me/tasks", taskHandler.ListMine)
		authorized.POST("/users/me/tasks/add", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id/update", taskHandler.Update)
		authorized.GET("/roles", roleHandler.ListRoles)
	}
}
