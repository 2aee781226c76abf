package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// WriteBusiness maps a BusinessError to its HTTP shape: conflicts get
// 409, missing references 404, everything else is a plain 400.
func WriteBusiness(c *gin.Context, be BusinessError) {
	status := http.StatusBadRequest
	switch be.Code {
	case "slot_conflict":
		status = http.StatusConflict
	case "not_found":
		status = http.StatusNotFound
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Field:   be.Field,
		Message: msg,
	})
}
