package models

// Response is the uniform envelope returned by every endpoint,
// success or failure
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// NewSuccess builds a success envelope
func NewSuccess(statusCode int, message string, data interface{}) Response {
	return Response{Success: true, StatusCode: statusCode, Message: message, Data: data}
}

// NewError builds a failure envelope; data is always null
func NewError(statusCode int, message string) Response {
	return Response{Success: false, StatusCode: statusCode, Message: message, Data: nil}
}
