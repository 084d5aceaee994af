package dto

// ErrorResponse is the body of a transport-level failure (bad path
// parameter, no acceptable format, rate limit). Domain not-found results are
// not reported this way.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Message: message, Code: code}}
}
