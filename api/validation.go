package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationErrorHandler writes request validation failures as Error bodies.
// The validator reports everything as a bad request; failed security
// requirements are turned into 401s.
func ValidationErrorHandler(c *gin.Context, message string, statusCode int) {
	if strings.Contains(message, "SecurityRequirementsError") {
		statusCode = http.StatusUnauthorized
	}
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

// ParamErrorHandler writes path and query binding failures as Error bodies.
func ParamErrorHandler(c *gin.Context, err error, statusCode int) {
	c.AbortWithStatusJSON(statusCode, Error{Message: err.Error()})
}
