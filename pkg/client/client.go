/*
Package client implements the JSON-RPC 2.0 protocol layer shared by every
service in the SDK: the endpoint registry for the three daemon APIs, URI
normalization, request envelopes with an explicit correlation id, HTTP
dispatch, and response parsing into typed results or structured API errors.

The package is deliberately log-free and retry-free. Logging wraps calls in
the jsonrpc service, retries live in pkg/retry, so this layer stays a pure
single-attempt request/response pipe that is easy to reason about.
*/
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
	"github.com/maxbull/factom-go-sdk/pkg/config"
)

// Endpoint selects which of the three daemon services a call is sent to.
type Endpoint int

const (
	// Factomd is the node API served under /v2.
	Factomd Endpoint = iota
	// Walletd is the factom-walletd API served under /v2.
	Walletd
	// Debug is factomd's debug API served under /debug.
	Debug
)

func (e Endpoint) String() string {
	switch e {
	case Factomd:
		return "factomd"
	case Walletd:
		return "walletd"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("endpoint(%d)", int(e))
	}
}

type Client struct {
	/*
		HttpClient is the transport shared by the three endpoints and by
		every clone of this client. I'd prefer to unexport it, but callers
		keep needing one-off transport tweaks (proxies, custom TLS, test
		servers) and exporting the field beats growing a config knob for
		each of them.
	*/
	HttpClient *http.Client

	factomdURL *url.URL
	walletdURL *url.URL
	debugURL   *url.URL

	requestID *atomic.Uint64
}

// New builds a client from the configured endpoint hosts. Every host is
// normalized before use; if any of them is malformed, construction fails
// with the full list of offenders rather than a usable-looking client
// that breaks on its first call.
func New(cfg *config.Config) (*Client, error) {
	factomdURL, factomdErr := NormalizeEndpoint(cfg.FactomdURL, core.APIPath)
	walletdURL, walletdErr := NormalizeEndpoint(cfg.WalletdURL, core.APIPath)

	debugHost := cfg.DebugURL
	if debugHost == "" {
		debugHost = cfg.FactomdURL
	}
	debugURL, debugErr := NormalizeEndpoint(debugHost, core.DebugPath)

	if err := multierr.Combine(factomdErr, walletdErr, debugErr); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = core.DefaultTimeout
	}

	return &Client{
		HttpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		factomdURL: factomdURL,
		walletdURL: walletdURL,
		debugURL:   debugURL,
		requestID:  atomic.NewUint64(0),
	}, nil
}

// NormalizeEndpoint parses host as an absolute URL and replaces its path
// with requiredPath. Replacing instead of joining makes normalization
// idempotent: a host already carrying /v2 comes out identical to a bare
// one, and nothing ever ends up at /v2/v2. Scheme-less or host-less
// strings fail instead of guessing.
func NormalizeEndpoint(host, requiredPath string) (*url.URL, error) {
	parsed, err := url.Parse(host)
	if err != nil {
		return nil, &core.ConfigurationError{Host: host, Cause: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &core.ConfigurationError{
			Host:  host,
			Cause: errors.New("scheme and host are required"),
		}
	}
	parsed.Path = requiredPath
	parsed.RawPath = ""
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}

// EndpointURL returns a copy of the normalized URL a logical endpoint
// resolves to.
func (c *Client) EndpointURL(endpoint Endpoint) (*url.URL, error) {
	var target *url.URL
	switch endpoint {
	case Factomd:
		target = c.factomdURL
	case Walletd:
		target = c.walletdURL
	case Debug:
		target = c.debugURL
	default:
		return nil, fmt.Errorf("unknown endpoint %s", endpoint)
	}
	copied := *target
	return &copied, nil
}

// CurrentID returns the correlation id the next envelope will carry.
func (c *Client) CurrentID() uint64 {
	return c.requestID.Load()
}

// IncrementID advances the correlation id by one and returns the new
// value. The counter wraps to zero past the maximum uint64 instead of
// failing; distinct ids per call are the caller's choice, never implicit.
func (c *Client) IncrementID() uint64 {
	return c.requestID.Inc()
}

// SetID pins the correlation id to the given value.
func (c *Client) SetID(id uint64) {
	c.requestID.Store(id)
}

// Clone returns a client bound to the same endpoints and the same
// transport, with an independent correlation id counter seeded from the
// current value. Concurrent users of distinct clones never race on id
// state while still sharing the HTTP connection pool.
func (c *Client) Clone() *Client {
	factomdURL := *c.factomdURL
	walletdURL := *c.walletdURL
	debugURL := *c.debugURL
	return &Client{
		HttpClient: c.HttpClient,
		factomdURL: &factomdURL,
		walletdURL: &walletdURL,
		debugURL:   &debugURL,
		requestID:  atomic.NewUint64(c.requestID.Load()),
	}
}

// Do sends one envelope to the selected endpoint in a single attempt and
// parses whatever comes back. Non-2xx statuses do not short-circuit:
// both daemons answer rejected calls with a proper JSON-RPC error
// envelope on top of an HTTP error status, so the body is decoded first
// and the status is only reported when the body is not a JSON-RPC
// response at all.
func (c *Client) Do(ctx context.Context, endpoint Endpoint, request *Request) (*RawResponse, error) {
	target, err := c.EndpointURL(endpoint)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, core.ErrFailedToMarshalRequest.WithArgs(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, core.ErrFailedToBuildRequest.WithArgs(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.HttpClient.Do(httpReq)
	if err != nil {
		return nil, &core.TransportError{Endpoint: endpoint.String(), Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &core.TransportError{Endpoint: endpoint.String(), Err: err}
	}

	raw, parseErr := ParseRawResponse(respBody)
	if parseErr != nil {
		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			// A gateway or a crashed daemon answering HTML is a transport
			// problem, not a protocol one.
			return nil, &core.TransportError{
				Endpoint: endpoint.String(),
				Err:      fmt.Errorf("%s: %w", httpResp.Status, parseErr),
			}
		}
		return nil, parseErr
	}
	return raw, nil
}
