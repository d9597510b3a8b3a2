package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/inkpress/pkg/response"
)

// parseID reads a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, name+" must be a number", nil)
		return 0, false
	}
	return uint(v), true
}
