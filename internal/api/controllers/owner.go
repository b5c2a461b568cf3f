package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDHeader = "x-user-id"

// requestUserID reads the caller-declared owner from the x-user-id header, then the userId
// query parameter. It is not verified against any session.
func requestUserID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(userIDHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("userId"))
}
