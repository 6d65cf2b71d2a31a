package types

import (
	"errors"
	"net/http"

	appErr "github.com/hotel-booking/engine/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{StatusCode: status, Error: http.StatusText(status), Message: message}
}

// StatusOf maps an application error code to its HTTP status.
func StatusOf(code appErr.Code) int {
	switch code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict, appErr.CodeAlreadyExists:
		return http.StatusConflict
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	case appErr.CodeDeadline:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// FromError builds the response for err. Causes of internal errors are not
// exposed to clients.
func FromError(err error) ErrorResponse {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return NewErrorResponse(http.StatusInternalServerError, "internal server error")
	}
	status := StatusOf(ae.Code)
	if status == http.StatusInternalServerError {
		return NewErrorResponse(status, "internal server error")
	}
	return NewErrorResponse(status, ae.Message)
}
