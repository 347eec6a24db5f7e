package domain

// AuthenticationError reports missing, malformed, expired or mismatched
// credentials. Reason is safe to show to the client.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	if e.Reason == "" {
		return "authentication failed"
	}
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return ErrUnauthenticated }

// Code implements CodedError.
func (e *AuthenticationError) Code() string { return "AUTHENTICATION_FAILED" }
