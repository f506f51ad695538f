package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// weekOf resolves the effective year and week of a listing request.
// Both parameters must parse; otherwise the current ISO week applies.
func (s *Server) weekOf(yearStr, weekStr string) (int, int) {
	year, errYear := strconv.Atoi(yearStr)
	week, errWeek := strconv.Atoi(weekStr)
	if errYear != nil || errWeek != nil {
		return s.now().ISOWeek()
	}
	return year, week
}

func (s *Server) listEvents(c *gin.Context) {
	year, week := s.weekOf(c.Query("year"), c.Query("week"))

	rows, err := s.events.ListWeek(year, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"week":   week,
		"events": mapEvents(rows),
	})
}

func (s *Server) createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.events.Create(req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Događaj uspješno dodan.",
		"new_event": gin.H{"id_dogadaj": id},
	})
}

func (s *Server) updateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := s.events.Update(id, req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if affected == 0 && s.cfg.StrictUpdates {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Događaj uspješno ažuriran."})
}

// deleteEvent is idempotent: deleting an identifier that matches no
// row still succeeds.
func (s *Server) deleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	if err := s.events.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Događaj uspješno obrisan."})
}
