package utils

import "testing"

func TestHashString_Deterministic(t *testing.T) {
	h1 := HashString("payload", "key")
	h2 := HashString("payload", "key")
	if h1 != h2 {
		t.Fatalf("expected deterministic hash, got %q and %q", h1, h2)
	}
	if len(h1) != 64 { // hex-encoded SHA-256
		t.Fatalf("hash length = %d, want 64", len(h1))
	}
}

func TestHashString_KeySeparation(t *testing.T) {
	if HashString("payload", "key-a") == HashString("payload", "key-b") {
		t.Fatal("expected different hashes for different keys")
	}
}

func TestVerifyHashString(t *testing.T) {
	h := HashString("access-code", "key")

	if !VerifyHashString("access-code", h, "key") {
		t.Fatal("expected verification to succeed")
	}
	if VerifyHashString("wrong-code", h, "key") {
		t.Fatal("expected verification to fail for wrong data")
	}
	if VerifyHashString("access-code", h, "wrong-key") {
		t.Fatal("expected verification to fail for wrong key")
	}
}
