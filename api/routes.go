package api

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(r *gin.Engine) {
	// Calendar and reports shells plus their assets.
	r.StaticFile("/", "./static/index.html")
	r.StaticFile("/reports", "./static/reports.html")
	r.Static("/static", "./static")

	api := r.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("", s.listEvents)
			events.POST("", s.createEvent)
			events.PUT("/:id", s.updateEvent)
			events.DELETE("/:id", s.deleteEvent)
		}

		api.GET("/form-data", s.formData)

		reports := api.Group("/reports")
		{
			reports.GET("/teacher-courses", s.teacherCourses)
			reports.GET("/student-schedule/:jmbag", s.studentSchedule)
		}

		api.GET("/logs/teacher-email-changes", s.teacherEmailChanges)
		api.GET("/history/events", s.eventHistory)
	}
}
