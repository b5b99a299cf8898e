package crypto

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

func TestNewCryptoExchange(t *testing.T) {
	ex := NewCryptoExchange("", "", "")
	assert.Equal(t, schema.GMOCOIN, ex.Name())
	assert.Equal(t, schema.CRYPTO, ex.Market())
	assert.Equal(t, BaseURL, ex.Client().Endpoint())
	assert.NotNil(t, ex.REST())
}

func TestCryptoRoutesPrefixedPaths(t *testing.T) {
	paths := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		_, _ = io.WriteString(w, `{"status":0}`)
	}))
	defer srv.Close()

	ex := NewCryptoExchange(srv.URL, "key", "s3cr3t")
	ctx := context.Background()

	_, err := ex.Client().Request(ctx, "GET", "/private/v1/account/assets", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/private/v1/account/assets", <-paths)

	_, err = ex.REST().GetTicker(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/public/v1/ticker", <-paths)
}

func TestCryptoListen(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	ex := NewCryptoExchange("", "", "").WithWSURL("ws" + strings.TrimPrefix(srv.URL, "http"))
	l, err := ex.Listen(context.Background())
	require.NoError(t, err)
	defer l.Close()
	assert.Equal(t, gmocoin.StateConnected, l.(*gmocoin.Listener).State())
}
