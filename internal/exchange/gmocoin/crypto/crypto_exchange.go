package crypto

import (
	"context"

	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin"
	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

const (
	BaseURL = "https://api.coin.z.com"
	WSURL   = "wss://api.coin.z.com/ws/public"
)

// CryptoExchange bundles REST and WS for the GMO Coin crypto market.
type CryptoExchange struct {
	client *gmocoin.Client
	rest   *gmocoin.API
	wsURL  string
}

// NewCryptoExchange builds the crypto market client. Paths given with a
// /public or /private prefix are routed as written; unprefixed paths go
// through the endpoint catalog.
func NewCryptoExchange(endpoint, apiKey, apiSecret string, opts ...gmocoin.Option) *CryptoExchange {
	if endpoint == "" {
		endpoint = BaseURL
	}
	opts = append([]gmocoin.Option{gmocoin.WithResolver(gmocoin.PrefixResolver{})}, opts...)
	c := gmocoin.NewClient(endpoint, apiKey, apiSecret, opts...)
	return &CryptoExchange{client: c, rest: gmocoin.NewAPI(c), wsURL: WSURL}
}

// WithWSURL overrides the public stream URL.
func (e *CryptoExchange) WithWSURL(url string) *CryptoExchange {
	e.wsURL = url
	return e
}

func (e *CryptoExchange) Name() schema.ExchangeName   { return schema.GMOCOIN }
func (e *CryptoExchange) Market() schema.MarketType   { return schema.CRYPTO }
func (e *CryptoExchange) REST() interfaces.RESTClient { return e.rest }

// Client exposes the signed core for calls outside the catalog.
func (e *CryptoExchange) Client() *gmocoin.Client { return e.client }

func (e *CryptoExchange) Listen(ctx context.Context) (interfaces.Listener, error) {
	l, err := gmocoin.Dial(ctx, e.wsURL)
	if err != nil {
		return nil, err
	}
	return l, nil
}
