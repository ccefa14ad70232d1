package models

// ErrorResponse is the single-message error body used for lookups by id
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the error body used by write endpoints
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Error messages returned to API clients
const (
	MsgRestaurantNotFound        = "Restaurant not found"
	MsgInvalidPayload            = "Invalid or missing JSON payload"
	MsgMissingFields             = "Missing required fields: 'price', 'pizza_id', 'restaurant_id'"
	MsgValidationErrors          = "validation errors"
	MsgPizzaOrRestaurantNotFound = "Pizza or Restaurant not found"
)

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates an error body carrying one or more messages
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
