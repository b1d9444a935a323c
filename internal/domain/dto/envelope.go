package dto

// Envelope is the uniform JSON body of every API response.
//
// On success Data carries the payload and Message is omitted; on failure
// Success is false and Message holds a short, static, non-sensitive text.
// Underlying causes are logged server-side and never placed in the body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty" example:"Failed to fetch data from MongoDB"`
}

// OK wraps a successful payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failure envelope with the given client-facing message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
