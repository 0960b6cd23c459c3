package socketkit

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/socketkit/socketkit-go/adapters"
)

// Client is a session for sending analytics events to a collection
// endpoint. Construct it once, set the client id, then call SendEvent
// from as many goroutines as needed; concurrent sends are independent
// and unordered. Mutating the client id or logger while sends are in
// flight is the caller's responsibility to avoid.
type Client struct {
	config     Config
	clientID   string
	signer     *signer
	dispatcher *dispatcher
	logger     adapters.LoggerAdapter
	mu         sync.RWMutex
}

// NewClient creates a new client session.
// This is the only surface that fails hard: a client missing its base
// URL or credentials can never function.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("BaseURL is required")
	}
	if config.AuthorizationKey == "" {
		return nil, errors.New("AuthorizationKey is required")
	}
	if config.SigningKey == "" {
		return nil, errors.New("SigningKey is required")
	}

	logger := config.LoggerAdapter
	if logger == nil {
		logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	httpAdapter := config.HTTPAdapter
	if httpAdapter == nil {
		httpAdapter = adapters.NewNetHTTPAdapter()
	}

	return &Client{
		config:     config,
		logger:     logger,
		signer:     newSigner(config.SigningKey, logger),
		dispatcher: newDispatcher(config.BaseURL, config.AuthorizationKey, httpAdapter, logger),
	}, nil
}

// GenerateClientID returns a fresh UUID suitable for SetClientID.
func GenerateClientID() string {
	return uuid.NewString()
}

// SetClientID sets the session identity sent in the x-client-id header.
// By convention the id is a UUID, but the format is not validated;
// events cannot be sent until a non-empty id is set.
func (c *Client) SetClientID(id string) {
	c.mu.Lock()
	c.clientID = id
	c.mu.Unlock()

	c.logger.Debug("Client id set to %s", id)
}

// SetLogger replaces the diagnostic sink.
func (c *Client) SetLogger(logger adapters.LoggerAdapter) {
	c.mu.Lock()
	c.logger = logger
	c.signer.logger = logger
	c.dispatcher.logger = logger
	c.mu.Unlock()
}

// SendEvent validates, signs and transmits a single event. The call is
// fire and forget: after construction, every failure is reported
// through the logger and never returned or raised. Invalid events are
// dropped before any network traffic happens.
//
// The event's name is classified against the closed type set first,
// derived fields are attached next, and the schema check runs last;
// app_open events get library_version injected this way, overwriting
// any caller-supplied value.
func (c *Client) SendEvent(event Event) {
	c.mu.RLock()
	clientID := c.clientID
	logger := c.logger
	c.mu.RUnlock()

	if clientID == "" {
		logger.Warn("Cannot send event: client id is not set")
		return
	}

	eventType, ok := classifyEvent(event.Name)
	if !ok {
		logger.Warn("Cannot send event: unknown event type %q", event.Name)
		return
	}

	enrich(eventType, &event)

	if errs := validateEvent(eventType, event); len(errs) > 0 {
		logger.Warn("Dropping invalid %q event: %v", event.Name, errs)
		return
	}

	// The wire format always carries a batch, even of size one.
	signature, body, ok := c.signer.Sign([]Event{event})
	if !ok {
		// The signer already logged the failure.
		return
	}

	c.dispatcher.Dispatch(body, signature, clientID)
}
