package socketkit

import (
	"github.com/socketkit/socketkit-go/adapters"
)

// Re-export adapter types for convenience
type (
	HTTPAdapter   = adapters.HTTPAdapter
	HTTPResponse  = adapters.HTTPResponse
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

// Config holds the construction parameters of a Client.
// BaseURL, AuthorizationKey and SigningKey are required; everything
// else has a working default.
type Config struct {
	// BaseURL is the collection endpoint origin, e.g. "https://tracking.socketkit.com".
	BaseURL string
	// AuthorizationKey identifies the caller's account (x-socketkit-key header).
	AuthorizationKey string
	// SigningKey is the bare base64 body of a PKCS#8 private key, without
	// the PEM header and footer lines.
	SigningKey string
	// HTTPAdapter overrides the transport. Defaults to a net/http implementation.
	HTTPAdapter HTTPAdapter
	// LoggerAdapter overrides the diagnostic sink. Defaults to a print
	// logger at warn level.
	LoggerAdapter LoggerAdapter
}
