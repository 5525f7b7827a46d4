package pkg

import "fmt"

// DomainError is an application error carrying the HTTP status it maps
// to at the boundary.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
}

// HTTPError is the JSON error body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
