package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol 表示一个 GMO Coin 币对及其交易规则
type Symbol struct {
	Symbol     string     `json:"symbol"` // 交易所格式, 如 BTC, BTC_JPY, USD_JPY
	Base       string     `json:"-"`
	Quote      string     `json:"-"`
	MarketType MarketType `json:"-"`

	// 交易规则信息 (/v1/symbols)
	MinOrderSize     decimal.Decimal `json:"minOrderSize"`     // 暗号資産
	MinOpenOrderSize decimal.Decimal `json:"minOpenOrderSize"` // FX
	MaxOrderSize     decimal.Decimal `json:"maxOrderSize"`
	SizeStep         decimal.Decimal `json:"sizeStep"`
	TickSize         decimal.Decimal `json:"tickSize"`
	TakerFee         decimal.Decimal `json:"takerFee"`
	MakerFee         decimal.Decimal `json:"makerFee"`
}

// ParseSymbol 解析交易所格式的币对
// - 现货: BTC (计价币种固定为 JPY)
// - 杠杆 / FX: BTC_JPY, USD_JPY
func ParseSymbol(market MarketType, s string) (*Symbol, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("invalid symbol: empty")
	}

	parts := strings.Split(s, "_")
	switch {
	case len(parts) == 1 && market == CRYPTO:
		return &Symbol{Symbol: s, Base: s, Quote: "JPY", MarketType: market}, nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return &Symbol{Symbol: s, Base: parts[0], Quote: parts[1], MarketType: market}, nil
	default:
		return nil, fmt.Errorf("invalid %s symbol format: %s", market, s)
	}
}

// String 返回 base/quote 形式
func (s *Symbol) String() string {
	return fmt.Sprintf("%s/%s", s.Base, s.Quote)
}

// IsLeverage 判断是否为暗号資産的杠杆币对
func (s *Symbol) IsLeverage() bool {
	return s.MarketType == CRYPTO && strings.Contains(s.Symbol, "_")
}

// MinSize returns the smallest size accepted for a new order.
func (s *Symbol) MinSize() decimal.Decimal {
	if s.MinOpenOrderSize.IsPositive() {
		return s.MinOpenOrderSize
	}
	return s.MinOrderSize
}

// RoundPrice 按 tickSize 向下取整
func (s *Symbol) RoundPrice(price decimal.Decimal) decimal.Decimal {
	return floorStep(price, s.TickSize)
}

// RoundSize 按 sizeStep 向下取整
func (s *Symbol) RoundSize(size decimal.Decimal) decimal.Decimal {
	return floorStep(size, s.SizeStep)
}

// ValidateSize checks size against the order size limits and step.
func (s *Symbol) ValidateSize(size decimal.Decimal) error {
	if lo := s.MinSize(); lo.IsPositive() && size.LessThan(lo) {
		return fmt.Errorf("%s: size %s below minimum %s", s.Symbol, size, lo)
	}
	if s.MaxOrderSize.IsPositive() && size.GreaterThan(s.MaxOrderSize) {
		return fmt.Errorf("%s: size %s above maximum %s", s.Symbol, size, s.MaxOrderSize)
	}
	if !s.RoundSize(size).Equal(size) {
		return fmt.Errorf("%s: size %s is not a multiple of %s", s.Symbol, size, s.SizeStep)
	}
	return nil
}

func floorStep(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return v
	}
	return v.Div(step).Floor().Mul(step)
}

// DecodeSymbols 解析 /v1/symbols 的响应并补全 base / quote
func DecodeSymbols(market MarketType, env Envelope) ([]Symbol, error) {
	if err := env.Err(); err != nil {
		return nil, err
	}
	var out []Symbol
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Body: env.Data, Err: fmt.Errorf("symbols data: %w", err)}
	}
	for i := range out {
		parsed, err := ParseSymbol(market, out[i].Symbol)
		if err != nil {
			return nil, &DecodeError{Body: env.Data, Err: err}
		}
		out[i].Base, out[i].Quote, out[i].MarketType = parsed.Base, parsed.Quote, market
	}
	return out, nil
}
