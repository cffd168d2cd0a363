package handler

import (
	"anaesthesia-staffing-service/internal/middleware"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter registers every route on a new gin engine
func SetupRouter(staffing *service.StaffingService, allowedOrigins []string, log logrus.FieldLogger) *gin.Engine {
	validation.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(allowedOrigins))

	hospitalHandler := NewHospitalHandler(staffing)
	personHandler := NewPersonHandler(staffing)
	dashboardHandler := NewDashboardHandler(staffing)

	r.GET("/health", dashboardHandler.Health)

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.POST("/refresh", dashboardHandler.Refresh)
		api.GET("/events", dashboardHandler.Events)
		api.GET("/reports", dashboardHandler.GetReports)
	}

	hospitals := r.Group("/hospitals")
	hospitals.Use(middleware.AuthMiddleware())
	{
		hospitals.GET("", hospitalHandler.ListHospitals)

		// Admin-only routes
		hospitals.POST("", middleware.RequireAdmin(), hospitalHandler.CreateHospital)
		hospitals.PATCH("/:id", middleware.RequireAdmin(), hospitalHandler.UpdateHospital)
		hospitals.DELETE("/:id", middleware.RequireAdmin(), hospitalHandler.DeleteHospital)
	}

	people := r.Group("/people")
	people.Use(middleware.AuthMiddleware())
	{
		people.GET("", personHandler.ListPeople)
		people.POST("/more", personHandler.LoadMore)

		// Admin-only routes
		people.POST("", middleware.RequireAdmin(), personHandler.CreatePerson)
		people.PATCH("/:id", middleware.RequireAdmin(), personHandler.UpdatePerson)
		people.DELETE("/:id", middleware.RequireAdmin(), personHandler.DeletePerson)
	}

	return r
}
