package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Success writes a JSON body with the given status.
func Success(c *gin.Context, code int, body any) {
	c.JSON(code, body)
}

// Error writes an error response with the provided error code and message.
func Error(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, ErrorBody{Error: message, Code: errCode})
}

// Fail converts err into a response. AppErrors map to their kind's status;
// anything else is an unhandled fault reported as 500 with its message.
func Fail(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		Error(c, appErr.Status(), string(appErr.Kind), appErr.Message)
		return
	}
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled request error")
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
