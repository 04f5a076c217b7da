package services

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// LoginClaims is the token payload minted by the external identity provider.
// Credentials, sessions and password handling all live on that side; this
// service only verifies the signature and projects the claims into a local
// account row.
type LoginClaims struct {
	Name   string `json:"name"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`
	Admin  bool   `json:"admin"`

	jwt.RegisteredClaims
}

type TokenReader struct {
	key ed25519.PublicKey
}

func NewTokenReader(path string) (*TokenReader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read identity public key: %v", err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("identity public key is not in pem format")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse identity public key: %v", err)
	}

	key, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("identity public key is not an ed25519 key")
	}

	return &TokenReader{key: key}, nil
}

// NewTokenReaderFromKey skips the pem loading, mostly for tests.
func NewTokenReaderFromKey(key ed25519.PublicKey) *TokenReader {
	return &TokenReader{key: key}
}

func (v *TokenReader) Parse(token string) (*LoginClaims, error) {
	claims := &LoginClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithValidMethods([]string{"EdDSA"})); err != nil {
		return nil, fmt.Errorf("unable to parse identity token: %v", err)
	}

	if len(claims.Name) == 0 {
		return nil, fmt.Errorf("identity token has no subject name")
	}

	return claims, nil
}
