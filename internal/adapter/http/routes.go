package http

import (
	"github.com/gin-gonic/gin"

	"focusos/internal/adapter/http/handlers"
	"focusos/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	habitHandler *handlers.HabitHandler,
	syncHandler *handlers.SyncHandler,
) {
	api := r.Group("/")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.ToggleTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/habits", habitHandler.ListHabits)
		api.POST("/habits", habitHandler.CreateHabit)
		api.PUT("/habits/:id", habitHandler.SetStreakEntry)
		api.DELETE("/habits/:id", habitHandler.DeleteHabit)

		api.POST("/sync-habits-to-tasks", syncHandler.SyncHabitsToTasks)
		api.POST("/migrate-tasks-category", taskHandler.MigrateTasksCategory)
	}
}
