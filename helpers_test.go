package socketkit

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockHTTPAdapter struct {
	calls     int
	err       error
	status    int
	endpoints []string
	bodies    [][]byte
	headers   []map[string]string
}

func (m *mockHTTPAdapter) Send(endpoint string, body []byte, headers map[string]string) (*HTTPResponse, error) {
	m.calls++
	m.endpoints = append(m.endpoints, endpoint)
	m.bodies = append(m.bodies, body)
	m.headers = append(m.headers, headers)
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return &HTTPResponse{Status: status, OK: status >= 200 && status < 300}, nil
}

// captureLogger records formatted log lines per level.
type captureLogger struct {
	mu     sync.Mutex
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (l *captureLogger) record(sink *[]string, message string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) == 0 {
		*sink = append(*sink, message)
		return
	}
	*sink = append(*sink, fmt.Sprintf(message, args...))
}

func (l *captureLogger) Debug(message string, args ...interface{}) { l.record(&l.debugs, message, args...) }
func (l *captureLogger) Info(message string, args ...interface{})  { l.record(&l.infos, message, args...) }
func (l *captureLogger) Warn(message string, args ...interface{})  { l.record(&l.warns, message, args...) }
func (l *captureLogger) Error(message string, args ...interface{}) { l.record(&l.errors, message, args...) }

func (l *captureLogger) warnsContaining(substr string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var matched []string
	for _, w := range l.warns {
		if strings.Contains(w, substr) {
			matched = append(matched, w)
		}
	}
	return matched
}

// ed25519SigningKey generates a fresh key pair and returns the bare
// PKCS#8 body the SDK expects plus the public key for verification.
func ed25519SigningKey(t *testing.T) (string, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(der), pub
}

func ecdsaSigningKey(t *testing.T) (string, *ecdsa.PublicKey) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(der), &priv.PublicKey
}

func rsaSigningKey(t *testing.T) (string, *rsa.PublicKey) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(der), &priv.PublicKey
}

func testConfig(t *testing.T) (Config, *mockHTTPAdapter, *captureLogger) {
	t.Helper()
	key, _ := ed25519SigningKey(t)
	httpAdapter := &mockHTTPAdapter{}
	logger := &captureLogger{}
	return Config{
		BaseURL:          "https://example.com",
		AuthorizationKey: "ak",
		SigningKey:       key,
		HTTPAdapter:      httpAdapter,
		LoggerAdapter:    logger,
	}, httpAdapter, logger
}
