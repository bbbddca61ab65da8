package errors

const (
	UnknownErrorCode       = 100_001
	RequestBodyInvalidCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// RequestBodyInvalidError indicates the request body could not be decoded
var RequestBodyInvalidError = new(RequestBodyInvalidCode, "RequestBodyInvalid", "Request body is invalid: %v")
