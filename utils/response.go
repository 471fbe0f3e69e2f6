package utils

import "github.com/gin-gonic/gin"

// RespondSuccess writes data as-is. Handlers own their payload shapes; this
// helper deliberately adds no envelope.
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// RespondError writes the standard error shape.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
