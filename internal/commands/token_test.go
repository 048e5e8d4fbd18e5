package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"daycare/backend/internal/repository/postgres/user"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating rsa key: %v", err)
	}

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}

	path := filepath.Join(t.TempDir(), "private.pem")
	if err = os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}
	return path
}

func TestGenTokenVerifyRoundTrip(t *testing.T) {
	keyFile := writeTestKey(t)

	access, refresh, err := GenToken(user.AuthClaims{ID: 7, Role: "ADMIN"}, keyFile)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}

	accessClaims, refreshClaims, err := VerifyTokens(access, refresh, keyFile)
	if err != nil {
		t.Fatalf("VerifyTokens: %v", err)
	}
	if accessClaims.UserId != 7 || refreshClaims.UserId != 7 {
		t.Errorf("expected user id 7, got access=%d refresh=%d", accessClaims.UserId, refreshClaims.UserId)
	}
	if accessClaims.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", accessClaims.Role)
	}
}

func TestVerifyTokensPairMismatch(t *testing.T) {
	keyFile := writeTestKey(t)

	access, _, err := GenToken(user.AuthClaims{ID: 1, Role: "ADMIN"}, keyFile)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}
	_, refresh, err := GenToken(user.AuthClaims{ID: 2, Role: "EDUCATOR"}, keyFile)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}

	if _, _, err = VerifyTokens(access, refresh, keyFile); err == nil {
		t.Fatal("expected error for mismatched token pair")
	}
}

func TestVerifyTokensGarbage(t *testing.T) {
	keyFile := writeTestKey(t)

	if _, _, err := VerifyTokens("not-a-token", "also-not-a-token", keyFile); err == nil {
		t.Fatal("expected error for malformed tokens")
	}
}
