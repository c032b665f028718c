package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vecop/internal/vecop"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string {
	return e.msg
}

func (e invalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ErrorBody{Type: errType, Message: msg},
	})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg)
}

// writeDispatchError reports a rejected evaluation. The error type is the
// dispatcher's kind, e.g. "invalid_width".
func writeDispatchError(c *echo.Context, err error) error {
	if kind := vecop.Kind(err); kind != nil {
		return writeError(c, http.StatusBadRequest, kind.Error(), err.Error())
	}
	if errors.Is(err, ErrInvalidRequest) {
		return writeBadRequest(c, err.Error())
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
}
