package zoom

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

// DefaultTokenTTL is how long an issued token stays valid. Zoom accepts up
// to an hour for server-to-server JWT credentials.
const DefaultTokenTTL = time.Hour

// CredentialIssuer produces an opaque bearer token for the meeting provider.
// Implementations may swap signing algorithms without changing the pipeline.
type CredentialIssuer interface {
	Token() (string, error)
}

// HS256Issuer signs compact JWTs with HMAC-SHA256 the way Zoom's legacy
// JWT apps expect: claims are {iss: apiKey, exp: now + ttl}.
type HS256Issuer struct {
	apiKey    string
	apiSecret string
	ttl       time.Duration
	now       func() time.Time
}

// NewHS256Issuer returns an issuer for the given credentials. Both values
// are required; a missing one fails here, before any network call.
func NewHS256Issuer(apiKey, apiSecret string) (*HS256Issuer, error) {
	if apiKey == "" {
		return nil, &model.ConfigurationError{Name: "zoom API key"}
	}
	if apiSecret == "" {
		return nil, &model.ConfigurationError{Name: "zoom API secret"}
	}
	return &HS256Issuer{apiKey: apiKey, apiSecret: apiSecret, ttl: DefaultTokenTTL, now: time.Now}, nil
}

// WithClock overrides the issuer's clock. Used by tests.
func (i *HS256Issuer) WithClock(now func() time.Time) *HS256Issuer {
	i.now = now
	return i
}

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

type tokenClaims struct {
	Iss string `json:"iss"`
	Exp int64  `json:"exp"`
}

// Token returns a signed header.payload.signature string.
func (i *HS256Issuer) Token() (string, error) {
	header, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	claims, err := json.Marshal(tokenClaims{Iss: i.apiKey, Exp: i.now().Add(i.ttl).Unix()})
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString(header) + "." + enc.EncodeToString(claims)

	mac := hmac.New(sha256.New, []byte(i.apiSecret))
	mac.Write([]byte(signingInput))
	return signingInput + "." + enc.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a token's signature against the secret and that it has not
// expired at the given instant.
func Verify(token, apiSecret string, at time.Time) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("malformed token")
	}

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	want := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(want), []byte(parts[2])) {
		return fmt.Errorf("signature mismatch")
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("malformed claims: %w", err)
	}
	var claims tokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return fmt.Errorf("malformed claims: %w", err)
	}
	if !at.Before(time.Unix(claims.Exp, 0)) {
		return fmt.Errorf("token expired")
	}
	return nil
}
