package gmocoin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/logger"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

const defaultTimeout = 10 * time.Second

// SigningPolicy decides which requests get authentication headers when
// credentials are configured.
type SigningPolicy int

const (
	// SignPrivate signs only endpoints resolved as private.
	SignPrivate SigningPolicy = iota
	// SignAlways signs every request, public ones included. This matches the
	// older crypto client and is kept only as an explicit opt-in.
	SignAlways
)

// Client is the signed REST core shared by the crypto and FX markets.
type Client struct {
	endpoint  string
	apiKey    string
	apiSecret string

	http     *resty.Client
	resolver interfaces.EndpointResolver
	policy   SigningPolicy
	now      func() time.Time

	// transport settings, applied once all options have run
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// Option customizes a Client.
type Option func(*Client)

// WithResolver sets how logical paths are routed. Defaults to CatalogResolver.
func WithResolver(r interfaces.EndpointResolver) Option {
	return func(c *Client) { c.resolver = r }
}

// WithSigningPolicy overrides the default SignPrivate policy.
func WithSigningPolicy(p SigningPolicy) Option {
	return func(c *Client) { c.policy = p }
}

// WithTimeout sets the transport timeout of every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock replaces time.Now when stamping signed requests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for endpoint. apiKey and apiSecret may be empty,
// in which case only public endpoints are usable.
func NewClient(endpoint, apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		resolver:  CatalogResolver{},
		policy:    SignPrivate,
		now:       time.Now,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	r := resty.New()
	if c.httpClient != nil {
		r = resty.NewWithClient(c.httpClient)
	}
	r.SetLogger(logger.Resty{}).SetTimeout(c.timeout)
	if c.userAgent != "" {
		r.SetHeader("User-Agent", c.userAgent)
	}
	c.http = r
	return c
}

// Endpoint returns the base URL without a trailing slash.
func (c *Client) Endpoint() string { return c.endpoint }

// HasCredentials reports whether both API key and secret are set.
func (c *Client) HasCredentials() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// URL returns the full request URL for a logical path and query parameters.
func (c *Client) URL(path string, params schema.Params) string {
	return c.buildURL(c.resolver.Resolve(path), params)
}

func (c *Client) buildURL(ep schema.Endpoint, params schema.Params) string {
	u := c.endpoint + ep.Path
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

func (c *Client) shouldSign(ep schema.Endpoint) bool {
	if !c.HasCredentials() {
		return false
	}
	return c.policy == SignAlways || ep.Visibility == schema.PRIVATE
}

// Request performs one call and returns the decoded JSON payload as is.
// Exchange status codes inside the payload are not interpreted.
func (c *Client) Request(ctx context.Context, method, path string, params schema.Params, body schema.Body) (any, error) {
	_, v, err := c.do(ctx, method, path, params, body)
	return v, err
}

// RequestRaw performs one call and returns the response body once it has
// been checked to be a single valid JSON value.
func (c *Client) RequestRaw(ctx context.Context, method, path string, params schema.Params, body schema.Body) ([]byte, error) {
	raw, _, err := c.do(ctx, method, path, params, body)
	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, params schema.Params, body schema.Body) ([]byte, any, error) {
	method = strings.ToUpper(method)
	ep := c.resolver.Resolve(path)
	fullURL := c.buildURL(ep, params)

	payload, err := encodeBody(body)
	if err != nil {
		return nil, nil, err
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if c.shouldSign(ep) {
		newSignedHeaders(c.apiKey, c.apiSecret, c.now(), method, ep.LogicalPath, payload).Apply(headers)
	}

	req := c.http.R().SetContext(ctx).SetHeaders(headers)
	if method != http.MethodGet {
		req.SetBody(payload)
	}

	logger.Debug("GMO Coin %s %s (%s)", method, fullURL, ep.Visibility)
	r, err := req.Execute(method, fullURL)
	if err != nil {
		return nil, nil, &schema.TransportError{Method: method, URL: fullURL, Err: err}
	}

	raw := r.Body()
	logger.Debug("GMO Coin %s %s 响应 %s: %s", method, ep.Path, r.Status(), string(raw))
	v, err := decodeJSON(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, v, nil
}

// encodeBody renders body as compact JSON without escaping HTML or non-ASCII
// characters. An empty body is the empty string.
func encodeBody(body schema.Body) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("encode request body: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// decodeJSON parses raw strictly: exactly one JSON value, numbers kept as
// json.Number.
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &schema.DecodeError{Body: raw, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &schema.DecodeError{Body: raw, Err: err}
	}
	return v, nil
}
