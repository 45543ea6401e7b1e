// Package auth builds HTTP clients that sign requests with OAuth1.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
)

// HMAC512Signer signs request messages with HMAC-SHA512, the method the
// Clever Cloud API expects. It plugs into oauth1.Config in place of the
// default HMAC-SHA1 signer.
type HMAC512Signer struct {
	ConsumerSecret string
}

// Name returns the OAuth1 signature method name.
func (s *HMAC512Signer) Name() string {
	return "HMAC-SHA512"
}

// Sign computes the base64 HMAC-SHA512 digest of the signature base string.
// The signing key is the consumer secret and token secret joined by "&".
func (s *HMAC512Signer) Sign(tokenSecret, message string) (string, error) {
	signingKey := strings.Join([]string{s.ConsumerSecret, tokenSecret}, "&")

	mac := hmac.New(sha512.New, []byte(signingKey))
	if _, err := mac.Write([]byte(message)); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// NewHTTPClient returns an HTTP client that signs every outgoing request with
// the given OAuth1 credentials.
func NewHTTPClient(ctx context.Context, consumerKey, consumerSecret, token, secret string) *http.Client {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	config.Signer = &HMAC512Signer{ConsumerSecret: consumerSecret}

	return config.Client(ctx, oauth1.NewToken(token, secret))
}
