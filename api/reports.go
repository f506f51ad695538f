package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) teacherCourses(c *gin.Context) {
	rows, err := s.reports.TeacherCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) studentSchedule(c *gin.Context) {
	rows, err := s.reports.StudentSchedule(c.Param("jmbag"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mapStudentSchedule(rows))
}

func (s *Server) teacherEmailChanges(c *gin.Context) {
	rows, err := s.reports.EmailChanges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mapEmailChanges(rows))
}

func (s *Server) eventHistory(c *gin.Context) {
	rows, err := s.reports.EventHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mapEventHistory(rows))
}
