package handlers

import (
	"log"
	"net/http"

	"herhub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// JSONError reports a client-caused failure in the shared envelope.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONInternal logs the underlying error and answers with a generic message;
// store and runtime failures never leak detail to the caller.
func JSONInternal(c *gin.Context, context string, err error) {
	log.Printf("%s: %v", context, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
}

// currentUserID returns the authenticated user's id set by RequireAuth.
func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.UserIDKey)
}
