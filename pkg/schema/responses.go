package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Envelope is the common shape of GMO Coin REST responses:
//
//	{"status": 0, "data": ..., "responsetime": "2019-03-19T02:15:06.001Z"}
type Envelope struct {
	Status       int             `json:"status"`
	Data         json.RawMessage `json:"data,omitempty"`
	Messages     []APIMessage    `json:"messages,omitempty"`
	ResponseTime time.Time       `json:"responsetime"`
}

// ParseEnvelope decodes raw response bytes into an Envelope.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, &DecodeError{Body: raw, Err: err}
	}
	return env, nil
}

// Err returns an *APIError when the exchange reported a non-zero status.
func (e Envelope) Err() error {
	if e.Status == 0 {
		return nil
	}
	return &APIError{Status: e.Status, Messages: e.Messages}
}

// Ticker is one entry of the /v1/ticker response. Volume is absent on FX.
type Ticker struct {
	Symbol    string          `json:"symbol"`
	Ask       decimal.Decimal `json:"ask"`
	Bid       decimal.Decimal `json:"bid"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Last      decimal.Decimal `json:"last"`
	Volume    decimal.Decimal `json:"volume"`
	Status    string          `json:"status,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Spread returns Ask - Bid.
func (t Ticker) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}

// DecodeTickers extracts the ticker list from a successful envelope.
func DecodeTickers(env Envelope) ([]Ticker, error) {
	if err := env.Err(); err != nil {
		return nil, err
	}
	var out []Ticker
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Body: env.Data, Err: fmt.Errorf("ticker data: %w", err)}
	}
	return out, nil
}

// TickerFromMessage converts a decoded ticker stream message into a Ticker.
func TickerFromMessage(msg any) (Ticker, error) {
	var t Ticker
	raw, err := json.Marshal(msg)
	if err != nil {
		return t, &DecodeError{Err: fmt.Errorf("ticker message: %w", err)}
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return t, &DecodeError{Body: raw, Err: fmt.Errorf("ticker message: %w", err)}
	}
	return t, nil
}
