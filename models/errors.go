// path: models/errors.go
package models

import "net/http"

// Reason codes surfaced to the client alongside the human-readable message.
const (
	CodeFill   = "fillError"
	CodeUpload = "uploadError"
)

// RequestError is a client-facing validation failure with a fixed HTTP
// status. Anything that is not a RequestError is treated as a server
// error and kept opaque to the client.
type RequestError struct {
	Code    string
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

var (
	ErrFill     = &RequestError{Code: CodeFill, Status: http.StatusBadRequest, Message: "Please fill in all fields."}
	ErrNoFile   = &RequestError{Code: CodeUpload, Status: http.StatusBadRequest, Message: "No photo uploaded."}
	ErrFileType = &RequestError{Code: CodeUpload, Status: http.StatusBadRequest, Message: "Unsupported file type."}
	ErrTooLarge = &RequestError{Code: CodeUpload, Status: http.StatusRequestEntityTooLarge, Message: "File too large."}
)
