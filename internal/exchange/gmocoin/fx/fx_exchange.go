package fx

import (
	"context"

	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin"
	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

const (
	BaseURL = "https://forex-api.coin.z.com"
	WSURL   = "wss://forex-api.coin.z.com/ws/public"
)

// FXExchange bundles REST and WS for the GMO Coin FX market.
type FXExchange struct {
	client *gmocoin.Client
	rest   *gmocoin.API
	wsURL  string
}

// NewFXExchange builds the FX market client. Logical paths are routed
// through the endpoint catalog; unknown paths are treated as public.
func NewFXExchange(endpoint, apiKey, apiSecret string, opts ...gmocoin.Option) *FXExchange {
	if endpoint == "" {
		endpoint = BaseURL
	}
	opts = append([]gmocoin.Option{gmocoin.WithResolver(gmocoin.CatalogResolver{})}, opts...)
	c := gmocoin.NewClient(endpoint, apiKey, apiSecret, opts...)
	return &FXExchange{client: c, rest: gmocoin.NewAPI(c), wsURL: WSURL}
}

// WithWSURL overrides the public stream URL.
func (e *FXExchange) WithWSURL(url string) *FXExchange {
	e.wsURL = url
	return e
}

func (e *FXExchange) Name() schema.ExchangeName   { return schema.GMOCOIN }
func (e *FXExchange) Market() schema.MarketType   { return schema.FX }
func (e *FXExchange) REST() interfaces.RESTClient { return e.rest }

// Client exposes the signed core for calls outside the catalog.
func (e *FXExchange) Client() *gmocoin.Client { return e.client }

func (e *FXExchange) Listen(ctx context.Context) (interfaces.Listener, error) {
	l, err := gmocoin.Dial(ctx, e.wsURL)
	if err != nil {
		return nil, err
	}
	return l, nil
}
