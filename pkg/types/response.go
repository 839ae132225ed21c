package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// LoginRedirect is attached to 401 responses for browser flows so the client
// can bounce the visitor to the login page and return them afterwards.
type LoginRedirect struct {
	RedirectTo string `json:"redirect_to"`
	Next       string `json:"next,omitempty"`
}
