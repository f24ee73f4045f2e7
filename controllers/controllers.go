package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// serverError answers 500 with a generic message. Error detail is only
// exposed outside production.
func serverError(c *gin.Context, err error, production bool) {
	if production {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}

// parseID reads the :id path param. A non-numeric id answers 400 and
// returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
