package app

import (
	"github.com/cultivatecmx-maker/cultivatec-school/docs"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/middleware"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	router.POST("/api/login", c.auth.Login)
	router.GET("/api/health", c.health.Health)

	// Everything else requires a valid token
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/dashboard", c.dashboard.GetOverview)
		api.GET("/modules", c.dashboard.GetModules)

		api.GET("/classes", c.class.GetClasses)
		api.GET("/classes/:id", c.class.GetClass)
		api.POST("/classes", c.class.CreateClass)
		api.PUT("/classes/:id", c.class.UpdateClass)
		api.DELETE("/classes/:id", c.class.DeleteClass)

		api.GET("/students", c.progress.GetStudents)
		api.GET("/progress", c.progress.GetProgress)
		api.POST("/progress", c.progress.AddProgress)
		api.PUT("/progress/:studentId/:module", c.progress.UpdateProgress)
		api.DELETE("/progress/:studentId/:module", c.progress.DeleteProgress)

		api.GET("/profile", c.account.GetProfile)
		api.PUT("/profile", c.account.UpdateProfile)
		api.POST("/profile/avatar", c.account.UploadAvatar)

		api.GET("/school", c.account.GetSchool)

		api.GET("/notifications", c.notification.GetNotifications)
		api.DELETE("/notifications/:id", c.notification.DismissNotification)

		api.GET("/reports/students.csv", c.report.StudentsCSV)
		api.GET("/reports/workbook.xlsx", c.report.Workbook)
		api.GET("/reports/summary", c.report.Summary)

		// License and billing fields are admin-only
		admin := api.Group("")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.PUT("/school", c.account.UpdateSchool)
			admin.POST("/school/logo", c.account.UploadLogo)
		}
	}
}
