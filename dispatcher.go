package socketkit

import (
	"strings"

	"github.com/socketkit/socketkit-go/adapters"
)

const eventsPath = "/v1/events"

const (
	headerAuthorizationKey = "x-socketkit-key"
	headerSignature        = "x-signature"
	headerClientID         = "x-client-id"
	headerUserAgent        = "user-agent"
)

// dispatcher owns the transport handle and performs the one-shot
// delivery of a signed event batch. Transport failures are logged as
// warnings and never propagated; there is no retry.
type dispatcher struct {
	endpoint         string
	authorizationKey string
	httpAdapter      adapters.HTTPAdapter
	logger           adapters.LoggerAdapter
}

func newDispatcher(baseURL, authorizationKey string, httpAdapter adapters.HTTPAdapter, logger adapters.LoggerAdapter) *dispatcher {
	return &dispatcher{
		endpoint:         strings.TrimRight(baseURL, "/") + eventsPath,
		authorizationKey: authorizationKey,
		httpAdapter:      httpAdapter,
		logger:           logger,
	}
}

// Dispatch posts the serialized batch with the identity headers.
func (d *dispatcher) Dispatch(body []byte, signature, clientID string) {
	headers := map[string]string{
		headerAuthorizationKey: d.authorizationKey,
		headerSignature:        signature,
		headerClientID:         clientID,
		headerUserAgent:        userAgent(),
	}

	d.logger.Debug("Sending event batch to %s", d.endpoint)

	resp, err := d.httpAdapter.Send(d.endpoint, body, headers)
	if err != nil {
		d.logger.Warn("Network error occurred: %v", err)
		return
	}
	if !resp.OK {
		d.logger.Warn("Event delivery failed with status %d", resp.Status)
		return
	}

	d.logger.Debug("Event batch delivered, status %d", resp.Status)
}
