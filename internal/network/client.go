package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ClientFactory creates outbound HTTP clients that honor the configured proxy.
type ClientFactory struct {
	proxyURL      string
	testTransport http.RoundTripper // For testing only
}

// NewClientFactory creates a new client factory. An empty proxyURL means direct connections.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: strings.TrimSpace(proxyURL)}
}

// NewClientFactoryForTest creates a client factory whose clients use rt.
// This is only for use in tests.
func NewClientFactoryForTest(rt http.RoundTripper) *ClientFactory {
	return &ClientFactory{testTransport: rt}
}

// ProxyURL returns the configured proxy URL.
func (f *ClientFactory) ProxyURL() string {
	return f.proxyURL
}

// NewHTTPClient creates an http.Client with the given timeout. Zero means no client timeout.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}

	if f.testTransport != nil {
		client.Transport = f.testTransport
		return client
	}

	if f.proxyURL != "" {
		client.Transport = newTransportWithProxy(f.proxyURL)
	}

	return client
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// SOCKS proxies go through golang.org/x/net/proxy; HTTP/HTTPS proxies use http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return http.DefaultTransport.(*http.Transport).Clone()
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return http.DefaultTransport.(*http.Transport).Clone()
		}

		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return transport
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(parsed)
	return transport
}
