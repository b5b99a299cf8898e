package gmocoin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

type captured struct {
	method string
	uri    string
	header http.Header
	body   string
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, chan captured) {
	t.Helper()
	ch := make(chan captured, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		select {
		case ch <- captured{method: r.Method, uri: r.URL.RequestURI(), header: r.Header.Clone(), body: string(b)}:
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, ch
}

func fixedClock() time.Time { return time.UnixMilli(1700000000000) }

func TestClientPublicRequest(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0,"data":{"status":"OPEN"},"responsetime":"2019-03-19T02:15:06.001Z"}`)

	c := NewClient(srv.URL+"/", "key", "s3cr3t", WithClock(fixedClock))
	assert.Equal(t, srv.URL, c.Endpoint())
	assert.Equal(t, srv.URL+"/public/v1/status", c.URL("/v1/status", nil))

	got, err := c.Request(context.Background(), "GET", "/v1/status", nil, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "GET", req.method)
	assert.Equal(t, "/public/v1/status", req.uri)
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Empty(t, req.header.Get("API-KEY"))
	assert.Empty(t, req.header.Get("API-TIMESTAMP"))
	assert.Empty(t, req.header.Get("API-SIGN"))
	assert.Empty(t, req.body)

	env, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("0"), env["status"])
	assert.Equal(t, map[string]any{"status": "OPEN"}, env["data"])
}

func TestClientQueryKeepsCallerOrder(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "", "")

	params := schema.Params{
		{Key: "symbol", Value: "BTC"},
		{Key: "priceType", Value: "ASK"},
		{Key: "interval", Value: "1min"},
		{Key: "date", Value: "20240101"},
	}
	_, err := c.Request(context.Background(), "GET", "/v1/klines", params, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/public/v1/klines?symbol=BTC&priceType=ASK&interval=1min&date=20240101", req.uri)
}

func TestClientSignsPrivateRequest(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0,"data":"637000"}`)
	c := NewClient(srv.URL, "key", "s3cr3t", WithClock(fixedClock))

	_, err := c.Request(context.Background(), "POST", "/v1/order", nil, schema.Body{"symbol": "BTC"})
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "POST", req.method)
	assert.Equal(t, "/private/v1/order", req.uri)
	assert.Equal(t, `{"symbol":"BTC"}`, req.body)
	assert.Equal(t, "key", req.header.Get("API-KEY"))
	assert.Equal(t, "1700000000000", req.header.Get("API-TIMESTAMP"))
	assert.Equal(t, "8388e64025b2e988ee8e682af66e5df9476171d5871b9efa131d1eb4162e012f", req.header.Get("API-SIGN"))
}

func TestClientEmptyBodySignsEmptyString(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "key", "s3cr3t", WithClock(fixedClock))

	_, err := c.Request(context.Background(), "GET", "/v1/account/margin", nil, schema.Body{})
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/private/v1/account/margin", req.uri)
	assert.Empty(t, req.body)
	assert.Equal(t, Sign("s3cr3t", "1700000000000", "GET", "/v1/account/margin", ""), req.header.Get("API-SIGN"))
	assert.NotEqual(t, Sign("s3cr3t", "1700000000000", "GET", "/v1/account/margin", "null"), req.header.Get("API-SIGN"))
}

func TestClientWithoutCredentialsNeverSigns(t *testing.T) {
	for _, creds := range [][2]string{{"", ""}, {"key", ""}, {"", "s3cr3t"}} {
		srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
		c := NewClient(srv.URL, creds[0], creds[1], WithSigningPolicy(SignAlways))

		_, err := c.Request(context.Background(), "POST", "/v1/order", nil, schema.Body{"symbol": "BTC"})
		require.NoError(t, err)

		req := <-ch
		assert.Empty(t, req.header.Get("API-KEY"))
		assert.Empty(t, req.header.Get("API-TIMESTAMP"))
		assert.Empty(t, req.header.Get("API-SIGN"))
	}
}

func TestClientUnknownPathIsPublic(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "key", "s3cr3t")

	_, err := c.Request(context.Background(), "GET", "/v1/notInCatalog", nil, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/public/v1/notInCatalog", req.uri)
	assert.Empty(t, req.header.Get("API-SIGN"))
}

func TestClientSignAlwaysPolicy(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "key", "s3cr3t", WithSigningPolicy(SignAlways), WithClock(fixedClock))

	_, err := c.Request(context.Background(), "GET", "/v1/ticker", nil, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/public/v1/ticker", req.uri)
	assert.Equal(t, Sign("s3cr3t", "1700000000000", "GET", "/v1/ticker", ""), req.header.Get("API-SIGN"))
}

func TestClientPrefixResolver(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "key", "s3cr3t", WithResolver(PrefixResolver{}), WithClock(fixedClock))

	_, err := c.Request(context.Background(), "POST", "/private/v1/order", nil, schema.Body{"symbol": "BTC"})
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/private/v1/order", req.uri)
	// the signature covers the logical path only
	assert.Equal(t, "8388e64025b2e988ee8e682af66e5df9476171d5871b9efa131d1eb4162e012f", req.header.Get("API-SIGN"))
}

func TestClientBodyKeepsUnicodeAndHTML(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "", "")

	_, err := c.Request(context.Background(), "post", "/v1/order", nil, schema.Body{"note": "円<&>"})
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "POST", req.method)
	assert.Equal(t, `{"note":"円<&>"}`, req.body)
}

func TestClientCustomMethod(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "", "")

	_, err := c.Request(context.Background(), "DELETE", "/v1/order", nil, schema.Body{"orderId": 1})
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "DELETE", req.method)
	assert.Equal(t, `{"orderId":1}`, req.body)
}

func TestClientDecodesRegardlessOfHTTPStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `{"status":5,"messages":[{"message_code":"ERR-5201","message_string":"MAINTENANCE"}]}`)
	c := NewClient(srv.URL, "", "")

	got, err := c.Request(context.Background(), "GET", "/v1/status", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, json.Number("5"), got.(map[string]any)["status"])

	raw, err := c.RequestRaw(context.Background(), "GET", "/v1/status", nil, nil)
	require.NoError(t, err)
	env, err := schema.ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Error(t, env.Err())
}

func TestClientDecodeError(t *testing.T) {
	for _, body := range []string{"", "<html>oops</html>", `{"status":0} trailing`} {
		srv, _ := newTestServer(t, http.StatusOK, body)
		c := NewClient(srv.URL, "", "")

		_, err := c.Request(context.Background(), "GET", "/v1/status", nil, nil)
		var decErr *schema.DecodeError
		assert.True(t, errors.As(err, &decErr), "body %q: %v", body, err)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", "", WithTimeout(2*time.Second))
	_, err := c.Request(context.Background(), "GET", "/v1/status", nil, nil)

	var trErr *schema.TransportError
	require.True(t, errors.As(err, &trErr), "%v", err)
	assert.Equal(t, "GET", trErr.Method)
	assert.Equal(t, url+"/public/v1/status", trErr.URL)
	assert.NotEmpty(t, trErr.Err.Error())
}

func TestClientWithHTTPClient(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	c := NewClient(srv.URL, "", "", WithHTTPClient(srv.Client()), WithUserAgent("gmocoin-connector-test"))

	_, err := c.Request(context.Background(), "GET", "/v1/symbols", nil, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "gmocoin-connector-test", req.header.Get("User-Agent"))
}

func TestClientResolverFunc(t *testing.T) {
	srv, ch := newTestServer(t, http.StatusOK, `{"status":0}`)
	resolver := interfaces.ResolverFunc(func(path string) schema.Endpoint {
		return schema.Endpoint{Path: "/private/v2" + path, LogicalPath: "/v2" + path, Visibility: schema.PRIVATE}
	})
	c := NewClient(srv.URL, "key", "s3cr3t", WithResolver(resolver), WithClock(fixedClock))

	_, err := c.Request(context.Background(), "GET", "/ticker", nil, nil)
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/private/v2/ticker", req.uri)
	assert.Equal(t, Sign("s3cr3t", "1700000000000", "GET", "/v2/ticker", ""), req.header.Get("API-SIGN"))
}
