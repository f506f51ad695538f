package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// formData runs the three reference listings. Any failure fails the
// whole request; the client never sees a partial payload.
func (s *Server) formData(c *gin.Context) {
	grupe, err := s.refs.Groups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	nastavnici, err := s.refs.Teachers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dvorane, err := s.refs.Halls()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"grupe":      grupe,
		"nastavnici": nastavnici,
		"dvorane":    dvorane,
	})
}
