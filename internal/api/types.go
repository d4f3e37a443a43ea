// Package api defines the response envelopes shared by every HTTP feature.
package api

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that only acknowledge a command.
type MessageResponse struct {
	Message string `json:"message"`
}

// RedirectResponse tells the client which screen to navigate to next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}
