package controller

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// providerError extracts the HTTP status and error.message of a rejected
// call. ok is false when err did not come from an HTTP response.
func providerError(err error) (code int, message string, ok bool) {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return 0, "", false
	}

	message = apiErr.Message
	if message == "" && len(apiErr.Errors) > 0 {
		message = apiErr.Errors[0].Message
	}
	if message == "" {
		message = unknownError
	}
	return apiErr.Code, message, true
}

func isAlreadyInState(code int) bool {
	return code == http.StatusBadRequest
}
