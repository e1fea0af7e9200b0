package tiktok

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"golang.org/x/net/proxy"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// App is the entry point to the TikTok web API. It holds no session state and
// no cache; every operation performs exactly one request and returns a fresh
// snapshot. Operations are safe to call concurrently.
type App struct {
	client    *http.Client
	proxy     string
	userAgent string
	baseURL   string // defaults to "https://www.tiktok.com"

	// Optional URL signer. Nil signFunc means URLs go out unsigned, which the
	// upstream accepts in most regions. InitSigner installs a browser-backed
	// signer; tests install their own.
	signerMu     sync.Mutex
	signFunc     func(rawURL string) (string, error)
	browser      *rod.Browser
	page         *rod.Page
	signingReady atomic.Bool
}

// defaultTransport returns an http.Transport tuned for repeated API calls:
// connection pooling, keep-alive, and TLS handshake caching.
func defaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
}

// New creates an App with sensible defaults. No browser is launched unless
// InitSigner is called.
func New() *App {
	return &App{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: defaultTransport(),
		},
		baseURL:   "https://www.tiktok.com",
		userAgent: defaultUserAgent,
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func (a *App) WithUserAgent(ua string) *App {
	a.userAgent = ua
	return a
}

// WithHTTPClient swaps the underlying HTTP client. Useful for callers that
// bring their own transport, timeout, or retry policy.
func (a *App) WithHTTPClient(client *http.Client) *App {
	a.client = client
	return a
}

// SetProxy configures an HTTP/HTTPS or SOCKS5 proxy for all requests.
// Passing an empty address restores the direct transport.
func (a *App) SetProxy(proxyAddr string) error {
	if proxyAddr == "" {
		a.client.Transport = defaultTransport()
		a.proxy = ""
		return nil
	}

	u, err := url.Parse(proxyAddr)
	if err != nil {
		return fmt.Errorf("parse proxy url: %w", err)
	}

	base := defaultTransport()

	switch u.Scheme {
	case "http", "https":
		base.Proxy = http.ProxyURL(u)
	case "socks5":
		var auth *proxy.Auth
		if u.User != nil {
			pass, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: pass}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return fmt.Errorf("socks5 proxy: %w", err)
		}
		dc, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return fmt.Errorf("socks5: context dialer not supported")
		}
		base.DialContext = dc.DialContext
	default:
		return fmt.Errorf("unsupported proxy scheme: %s", u.Scheme)
	}

	a.client.Transport = base
	a.proxy = proxyAddr
	return nil
}

// Close releases the signing browser if one was launched.
func (a *App) Close() error {
	return a.closeSigner()
}
