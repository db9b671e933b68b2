package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form handlers write to the wire. Internal
// detail (the wrapped cause) is deliberately absent: it belongs in logs.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to its HTTP shape. Unknown errors collapse to a
// generic 500 so persistence and programming failures never leak verbatim.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
