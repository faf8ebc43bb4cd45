package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithFields(c, status, err, msg, nil, detail)
}

// AbortWithFields is AbortWithError with a per-field message map, keyed by the
// request's JSON field names.
func AbortWithFields(c *gin.Context, status int, err error, msg string, fields map[string]string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Fields = fields
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
