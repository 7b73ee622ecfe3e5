package auth

import (
	"testing"
	"time"

	"github.com/orbya/portfolio-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "orbya-portfolio",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAdminToken(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAdminToken(cfg, time.Now(), 3)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseAdminToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.CredentialVersion != 3 {
		t.Fatalf("expected credential version 3, got %d", claims.CredentialVersion)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti")
	}
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAdminToken(cfg, time.Now().Add(-2*time.Hour), 1)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseAdminToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := MintAdminToken(testJWTConfig(), time.Now(), 1)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "different"
	if _, err := ParseAdminToken(other, token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestMintAdminTokenValidation(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := MintAdminToken(cfg, time.Now(), 1); err == nil {
		t.Fatal("expected missing secret to fail")
	}

	cfg = testJWTConfig()
	if _, err := MintAdminToken(cfg, time.Now(), 0); err == nil {
		t.Fatal("expected non-positive credential version to fail")
	}
}
