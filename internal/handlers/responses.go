package handlers

// ErrorResponse is the error envelope returned by the signup endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the envelope returned when a signup was forwarded.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
