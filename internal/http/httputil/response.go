package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hxuan190/split-engine/internal/common"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// HandleError aborts the request with the status and code carried by err.
func HandleError(c *gin.Context, err *common.HttpError) {
	if err.Cause != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(err.StatusCode, Response{
		Success: false,
		Code:    err.Code,
		Error:   err.Message,
	})
}
