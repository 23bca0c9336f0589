// internal/network/httpclient_test.go
package network

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// -- Configuration and Defaults --

func TestNewDefaultClientConfig(t *testing.T) {
	config := NewDefaultClientConfig()

	assert.Equal(t, DefaultRequestTimeout, config.RequestTimeout)
	assert.Equal(t, DefaultResponseHeaderTimeout, config.ResponseHeaderTimeout)
	assert.Equal(t, DefaultMaxIdleConns, config.MaxIdleConns)
	assert.True(t, config.ForceHTTP2, "HTTP/2 should be preferred by default")
	assert.NotNil(t, config.Logger)
}

func TestConfigureTLS_Defaults(t *testing.T) {
	tlsConfig := configureTLS(NewDefaultClientConfig())

	require.NotNil(t, tlsConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion)
	assert.False(t, tlsConfig.InsecureSkipVerify)
	assert.NotNil(t, tlsConfig.ClientSessionCache)
}

func TestConfigureTLS_CustomConfigIsCloned(t *testing.T) {
	custom := &tls.Config{MinVersion: tls.VersionTLS10, ServerName: "example.test"}
	config := NewDefaultClientConfig()
	config.TLSConfig = custom
	config.IgnoreTLSErrors = true

	tlsConfig := configureTLS(config)

	assert.NotSame(t, custom, tlsConfig)
	assert.Equal(t, "example.test", tlsConfig.ServerName)
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion, "minimum version is raised")
	assert.True(t, tlsConfig.InsecureSkipVerify)
	assert.False(t, custom.InsecureSkipVerify, "original must not be modified")
}

// -- Transport --

func TestNewHTTPTransport_Settings(t *testing.T) {
	config := NewDefaultClientConfig()
	config.Logger = zaptest.NewLogger(t)
	config.MaxIdleConns = 7
	config.TLSHandshakeTimeout = 3 * time.Second

	transport := NewHTTPTransport(config)

	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 3*time.Second, transport.TLSHandshakeTimeout)
	assert.True(t, transport.ForceAttemptHTTP2)
	assert.Contains(t, transport.TLSClientConfig.NextProtos, "h2", "http2.ConfigureTransport registers h2")
	assert.NotNil(t, transport.Proxy)
}

func TestNewHTTPTransport_HTTP1Only(t *testing.T) {
	config := NewDefaultClientConfig()
	config.ForceHTTP2 = false

	transport := NewHTTPTransport(config)

	assert.False(t, transport.ForceAttemptHTTP2)
	assert.Equal(t, []string{"http/1.1"}, transport.TLSClientConfig.NextProtos)
}

func TestNewHTTPTransport_ExplicitProxy(t *testing.T) {
	proxy, err := url.Parse("http://proxy.internal:3128")
	require.NoError(t, err)
	config := NewDefaultClientConfig()
	config.ProxyURL = proxy

	transport := NewHTTPTransport(config)

	req := httptest.NewRequest(http.MethodGet, "https://www.versioneye.com/api/v2", nil)
	got, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, proxy.String(), got.String())
}

func TestNewHTTPTransport_NilConfig(t *testing.T) {
	assert.NotNil(t, NewHTTPTransport(nil))
	assert.NotNil(t, NewClient(nil))
}

// -- Client --

func TestNewClient_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer server.Close()

	config := NewDefaultClientConfig()
	config.RequestTimeout = 5 * time.Second
	client := NewClient(config)
	defer client.CloseIdleConnections()

	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}
