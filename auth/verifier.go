package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller of a guarded endpoint.
type Identity struct {
	// Principal is the subject of the presented token.
	Principal string

	// Claims holds all token claims for downstream inspection.
	Claims map[string]any
}

// VerifierConfig configures the token verifier.
type VerifierConfig struct {
	// Issuer is the expected token issuer (iss claim). Optional.
	Issuer string

	// Audience is the expected token audience (aud claim). Optional.
	Audience string

	// PrincipalClaim is the claim containing the caller principal.
	// Default: "sub"
	PrincipalClaim string
}

// KeyProvider retrieves signing keys for token validation.
type KeyProvider interface {
	// GetKey returns the key for the given key ID.
	GetKey(ctx context.Context, keyID string) (any, error)
}

// StaticKeyProvider provides a single HMAC signing key, typically sourced
// from the secrets file at bootstrap.
type StaticKeyProvider struct {
	key []byte
}

// NewStaticKeyProvider creates a static key provider.
func NewStaticKeyProvider(key []byte) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// GetKey returns the static key.
func (p *StaticKeyProvider) GetKey(_ context.Context, _ string) (any, error) {
	if len(p.key) == 0 {
		return nil, ErrKeyNotFound
	}
	return p.key, nil
}

// Verifier validates bearer tokens for the diagnostic endpoints.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Verify returns a sentinel error for every rejection so the
//   transport layer can map it to a response without string matching.
type Verifier struct {
	config      VerifierConfig
	keyProvider KeyProvider
}

// NewVerifier creates a token verifier.
func NewVerifier(config VerifierConfig, keyProvider KeyProvider) *Verifier {
	if config.PrincipalClaim == "" {
		config.PrincipalClaim = "sub"
	}
	return &Verifier{config: config, keyProvider: keyProvider}
}

// Verify validates tokenString and returns the caller identity.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMissingCredentials
	}

	parseOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
	}
	if v.config.Issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(v.config.Issuer))
	}
	if v.config.Audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(v.config.Audience))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		kid := ""
		if kidVal, ok := token.Header["kid"].(string); ok {
			kid = kidVal
		}
		return v.keyProvider.GetKey(ctx, kid)
	}, parseOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrInvalidCredentials
		}
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	identity := &Identity{Claims: make(map[string]any, len(claims))}
	for k, val := range claims {
		identity.Claims[k] = val
	}
	if principal, ok := claims[v.config.PrincipalClaim].(string); ok {
		identity.Principal = principal
	}

	return identity, nil
}
