package gmocoin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

const (
	headerAPIKey       = "API-KEY"
	headerAPITimestamp = "API-TIMESTAMP"
	headerAPISign      = "API-SIGN"
)

// SignedHeaders are the authentication headers of one private request.
type SignedHeaders struct {
	APIKey    string
	Timestamp string
	Signature string
}

// Apply writes the headers onto h.
func (s SignedHeaders) Apply(h map[string]string) {
	h[headerAPIKey] = s.APIKey
	h[headerAPITimestamp] = s.Timestamp
	h[headerAPISign] = s.Signature
}

// Timestamp renders t as epoch milliseconds, rounded to the nearest
// millisecond.
func Timestamp(t time.Time) string {
	ms := (t.UnixNano() + int64(time.Millisecond)/2) / int64(time.Millisecond)
	return strconv.FormatInt(ms, 10)
}

// Sign returns hex(HMAC-SHA256(secret, timestamp+method+path+body)).
// path is the logical path without the /public or /private prefix.
func Sign(secret, timestamp, method, path, body string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(timestamp + method + path + body))
	return hex.EncodeToString(h.Sum(nil))
}

func newSignedHeaders(apiKey, apiSecret string, now time.Time, method, path, body string) SignedHeaders {
	ts := Timestamp(now)
	return SignedHeaders{
		APIKey:    apiKey,
		Timestamp: ts,
		Signature: Sign(apiSecret, ts, method, path, body),
	}
}
