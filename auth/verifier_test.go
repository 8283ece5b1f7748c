package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return s
}

func TestVerifier_ValidToken(t *testing.T) {
	v := NewVerifier(VerifierConfig{}, NewStaticKeyProvider(testKey))

	token := signToken(t, jwt.MapClaims{
		"sub": "ops@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)

	identity, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.Principal != "ops@example.com" {
		t.Errorf("Principal = %q, want %q", identity.Principal, "ops@example.com")
	}
}

func TestVerifier_WrongKey(t *testing.T) {
	v := NewVerifier(VerifierConfig{}, NewStaticKeyProvider(testKey))

	token := signToken(t, jwt.MapClaims{"sub": "x"}, []byte("other-key"))

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifier_ExpiredToken(t *testing.T) {
	v := NewVerifier(VerifierConfig{}, NewStaticKeyProvider(testKey))

	token := signToken(t, jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testKey)

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifier_MalformedToken(t *testing.T) {
	v := NewVerifier(VerifierConfig{}, NewStaticKeyProvider(testKey))

	if _, err := v.Verify(context.Background(), "not.a.jwt"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("Verify() error = %v, want ErrTokenMalformed", err)
	}
}

func TestVerifier_EmptyToken(t *testing.T) {
	v := NewVerifier(VerifierConfig{}, NewStaticKeyProvider(testKey))

	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Verify() error = %v, want ErrMissingCredentials", err)
	}
}

func TestVerifier_IssuerMismatch(t *testing.T) {
	v := NewVerifier(VerifierConfig{Issuer: "secretboot"}, NewStaticKeyProvider(testKey))

	token := signToken(t, jwt.MapClaims{
		"sub": "x",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestStaticKeyProvider_EmptyKey(t *testing.T) {
	p := NewStaticKeyProvider(nil)

	if _, err := p.GetKey(context.Background(), ""); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("GetKey() error = %v, want ErrKeyNotFound", err)
	}
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()

	if IdentityFromContext(ctx) != nil {
		t.Error("IdentityFromContext() on empty context should be nil")
	}
	if PrincipalFromContext(ctx) != "" {
		t.Error("PrincipalFromContext() on empty context should be empty")
	}

	ctx = WithIdentity(ctx, &Identity{Principal: "ops"})
	if got := PrincipalFromContext(ctx); got != "ops" {
		t.Errorf("PrincipalFromContext() = %q, want %q", got, "ops")
	}
}
