package adapters

// HTTPResponse represents the response from an HTTP request.
type HTTPResponse struct {
	OK     bool
	Status int
}

// HTTPAdapter is an interface for HTTP communication.
// Implement this interface to use custom HTTP clients.
type HTTPAdapter interface {
	// Send posts a pre-serialized request body to the specified endpoint.
	//
	// The body is serialized by the caller because the request signature
	// covers the exact bytes on the wire.
	//
	// Parameters:
	//   - endpoint: The API endpoint URL
	//   - body: JSON-encoded event batch
	//   - headers: Custom headers to merge with defaults
	//
	// Returns HTTP response or error.
	Send(endpoint string, body []byte, headers map[string]string) (*HTTPResponse, error)
}
