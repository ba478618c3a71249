package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "password" {
		t.Fatalf("unexpected hash: %q", hash)
	}
	if err := VerifyPassword(hash, "password"); err != nil {
		t.Fatalf("expected password to verify: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); err == nil {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// Malformed digests fail verification, they do not panic.
	if err := VerifyPassword("not-a-bcrypt-digest", "password"); err == nil {
		t.Fatal("expected malformed hash to fail verification")
	}
	if err := VerifyPassword("", "password"); err == nil {
		t.Fatal("expected empty hash to fail verification")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
