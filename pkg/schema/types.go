package schema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ExchangeName defines supported exchange.
type ExchangeName string

const (
	GMOCOIN ExchangeName = "gmocoin"
)

// MarketType categorizes market segments.
type MarketType string

const (
	CRYPTO MarketType = "crypto" // 暗号資産 (spot / leverage)
	FX     MarketType = "fx"     // 外国為替FX
)

// Visibility tells whether an endpoint needs a signed request.
type Visibility string

const (
	PUBLIC  Visibility = "public"
	PRIVATE Visibility = "private"
)

// Prefix is the URL segment placed in front of a logical path.
func (v Visibility) Prefix() string {
	if v == PRIVATE {
		return "/private"
	}
	return "/public"
}

// Endpoint is a resolved route: the request path and how it is accessed.
type Endpoint struct {
	Path        string     // path sent on the wire, e.g. /private/v1/order
	LogicalPath string     // path used in the signature text, e.g. /v1/order
	Visibility  Visibility // public or private
}

// Operation describes one named API call.
type Operation struct {
	Name       string
	Method     string
	Path       string
	Visibility Visibility
}

// Channel names a public WebSocket stream.
type Channel string

const (
	ChannelTicker     Channel = "ticker"
	ChannelOrderBooks Channel = "orderbooks"
	ChannelTrades     Channel = "trades"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters. The order supplied by the
// caller is the order written to the query string.
type Params []Param

// Add returns p with key=value appended.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Encode renders the parameters as an URL-encoded query string without the
// leading '?'. nil values are skipped.
func (p Params) Encode() string {
	var b strings.Builder
	for _, kv := range p {
		if kv.Value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(formatScalar(kv.Value)))
	}
	return b.String()
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Body is a JSON request payload passed through to the exchange as is.
type Body map[string]any
