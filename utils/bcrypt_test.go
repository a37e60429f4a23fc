package utils

import "testing"

func TestComparePasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("kuhl-pass-1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(string(hash), "kuhl-pass-1"); err != nil {
		t.Fatalf("ComparePassword rejected the matching password: %v", err)
	}
	if err := ComparePassword(string(hash), "wrong-pass"); err == nil {
		t.Fatal("ComparePassword accepted a wrong password")
	}
}

func TestComparePasswordMalformedHash(t *testing.T) {
	// a corrupt stored hash must fail the compare, never pass it
	if err := ComparePassword("not-a-bcrypt-hash", "anything"); err == nil {
		t.Fatal("ComparePassword accepted a malformed stored hash")
	}
	if err := ComparePassword("", "anything"); err == nil {
		t.Fatal("ComparePassword accepted an empty stored hash")
	}
}
