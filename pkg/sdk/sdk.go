package sdk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin"
	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin/crypto"
	"github.com/daaquan/gmocoin-connector/internal/exchange/gmocoin/fx"
	"github.com/daaquan/gmocoin-connector/pkg/config"
	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/logger"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

// SDK provides both GMO Coin markets behind one configuration
type SDK struct {
	cfg    config.Config
	crypto *crypto.CryptoExchange
	fx     *fx.FXExchange
}

// NewSDK creates the crypto and FX exchanges from cfg. Extra options are
// applied to both REST clients after the configured timeout.
func NewSDK(cfg config.Config, opts ...gmocoin.Option) *SDK {
	if d := cfg.Timeout(); d > 0 {
		opts = append([]gmocoin.Option{gmocoin.WithTimeout(d)}, opts...)
	}

	cc := cfg.Resolve(schema.CRYPTO)
	fc := cfg.Resolve(schema.FX)
	logger.Debug("初始化 GMO Coin SDK: crypto=%s (凭证: %t), fx=%s (凭证: %t)",
		cc.Endpoint, cc.HasCredentials(), fc.Endpoint, fc.HasCredentials())

	return &SDK{
		cfg:    cfg,
		crypto: crypto.NewCryptoExchange(cc.Endpoint, cc.APIKey, cc.APISecret, opts...),
		fx:     fx.NewFXExchange(fc.Endpoint, fc.APIKey, fc.APISecret, opts...),
	}
}

// Config returns the configuration the SDK was built from
func (sdk *SDK) Config() config.Config { return sdk.cfg }

// Crypto returns the crypto market exchange
func (sdk *SDK) Crypto() *crypto.CryptoExchange { return sdk.crypto }

// FX returns the FX market exchange
func (sdk *SDK) FX() *fx.FXExchange { return sdk.fx }

// Exchange looks up an exchange by market type
func (sdk *SDK) Exchange(market schema.MarketType) (interfaces.Exchange, error) {
	switch market {
	case schema.CRYPTO:
		return sdk.crypto, nil
	case schema.FX:
		return sdk.fx, nil
	default:
		return nil, fmt.Errorf("unsupported market type: %s", market)
	}
}

// Status queries the status endpoint of both markets concurrently. The first
// transport or decode failure cancels the other call.
func (sdk *SDK) Status(ctx context.Context) (map[schema.MarketType]any, error) {
	var cryptoStatus, fxStatus any

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := sdk.crypto.REST().GetStatus(ctx)
		if err != nil {
			return fmt.Errorf("%s status: %w", schema.CRYPTO, err)
		}
		cryptoStatus = res
		return nil
	})
	g.Go(func() error {
		res, err := sdk.fx.REST().GetStatus(ctx)
		if err != nil {
			return fmt.Errorf("%s status: %w", schema.FX, err)
		}
		fxStatus = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[schema.MarketType]any{
		schema.CRYPTO: cryptoStatus,
		schema.FX:     fxStatus,
	}, nil
}

