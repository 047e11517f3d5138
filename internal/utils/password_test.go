package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("expected hash to differ from plaintext")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Error("expected password to verify against its hash")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")

	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))

	if err == nil {
		t.Error("expected error for password over 72 bytes, got nil")
	}
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	if VerifyPassword("x", "not-a-bcrypt-hash") {
		t.Error("expected garbage hash to fail verification")
	}
}
