package activity

// MessageResponse is returned by signup and cancellation endpoints on success
type MessageResponse struct {
	Message string `json:"message"`
}
