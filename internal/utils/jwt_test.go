package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	if _, err := GenerateJWTToken("", 1, time.Hour, "key"); err == nil {
		t.Fatal("expected error for empty issuer")
	}
	if _, err := GenerateJWTToken("iss", 1, 0, "key"); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := GenerateJWTToken("iss", 1, time.Hour, ""); err == nil {
		t.Fatal("expected error for empty sign key")
	}
}

func TestGenerateAndValidateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("lockbox", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "lockbox")
	if err != nil {
		t.Fatalf("ValidateAndParseJWTToken error: %v", err)
	}
	if parsed.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("lockbox", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "lockbox"); err == nil {
		t.Fatal("expected error for wrong signing key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("lockbox", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else"); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("lockbox", 42, time.Nanosecond, "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret", "lockbox"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc.def.ghi" {
		t.Fatalf("token = %q, want %q", got, "abc.def.ghi")
	}

	if _, err := ParseBearerToken("Bearer"); err == nil {
		t.Fatal("expected error for header without token")
	}
	if _, err := ParseBearerToken("Bearer "); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("lockbox", 1234, time.Hour, "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	id, err := ParseUserIDFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("ParseUserIDFromJWT error: %v", err)
	}
	if id != 1234 {
		t.Fatalf("id = %d, want 1234", id)
	}

	if _, err := ParseUserIDFromJWT("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
