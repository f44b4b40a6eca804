package model

// ========== Request DTOs ==========

type SendEmailRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Room  string `json:"room" binding:"required"`
	Hotel string `json:"hotel" binding:"required"`
}

type NotifyRequest struct {
	GuestEmail string `json:"guestEmail" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// ========== Response DTOs ==========

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// NotifyResponse reports how many fan-out targets were actually reached.
// Sent can be lower than the resolved token count; callers inspect it.
type NotifyResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

// DispatchResult is the per-token outcome of one push send. It never
// outlives the request that produced it.
type DispatchResult struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
