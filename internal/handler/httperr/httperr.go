package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status    int    `json:"-"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// AbortWithError writes the public error body and aborts the request.
// The original err, when present, is attached to the gin context so the
// error middleware and request logging can see the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			resp.RequestID = id
		}
	}

	if err != nil {
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
