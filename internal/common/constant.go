package common

// The blog platform expects the credential in an Authorization header
// using the "Token" scheme: "Authorization: Token <jwt>".
const (
	AuthHeaderName = "Authorization"
	AuthScheme     = "Token"

	// RequestIDHeaderName carries a client-generated correlation ID on
	// every outbound API call.
	RequestIDHeaderName = "X-Request-Id"
)
