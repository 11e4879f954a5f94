package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope of the ordering API.
type ErrorBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// RespondJSON writes data as-is; the ordering API returns bare objects and arrays.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorBody{
		Title:   http.StatusText(code),
		Message: err.Error(),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, code int, err error) {
	RespondError(c, code, err)
	c.Abort()
}
