package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentroster/internal/app/controllers"
	"github.com/yigit/studentroster/internal/pkg/websocket"
	"github.com/yigit/studentroster/web"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
	pageController *controllers.PageController,
	eventsHandler *websocket.Handler,
) error {
	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// --- Pages ---
	router.GET("/", pageController.Index)
	router.GET("/admin", pageController.Admin)

	api := router.Group("/api")

	// Student routes (public access)
	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/active", studentController.ListActiveStudents)
		students.GET("/stats", studentController.GetStats)
		students.GET("/events", eventsHandler.HandleConnection)
		students.PUT("/:id/suspend", studentController.SuspendStudent)
		students.PUT("/:id/unsuspend", studentController.UnsuspendStudent)
	}

	api.GET("/health", healthController.Health)

	return nil
}
