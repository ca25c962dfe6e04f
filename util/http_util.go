// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/tracegraph/registry/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithCreated is the creator convention: a bare identifier wrapped in
// a 201 response.
func RespondWithCreated(c *gin.Context, id string) {
	c.JSON(201, gin.H{"id": id})
}
