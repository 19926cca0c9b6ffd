package security

import (
	"testing"
	"time"
)

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Generate("profile-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	id, err := tm.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if id != "profile-1" {
		t.Errorf("subject = %q, want profile-1", id)
	}

	if _, err := tm.Validate(token + "x"); err == nil {
		t.Error("tampered token validated")
	}

	other := NewTokenManager("other-secret", time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Error("token validated under a different secret")
	}

	expired := NewTokenManager("secret", -time.Minute)
	tok, _ := expired.Generate("profile-1")
	if _, err := tm.Validate(tok); err == nil {
		t.Error("expired token validated")
	}
}

func TestPinHasher(t *testing.T) {
	h := NewPinHasher()

	hash, err := h.Hash("1234")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, "1234"); err != nil {
		t.Errorf("Compare with right PIN: %v", err)
	}
	if err := h.Compare(hash, "0000"); err == nil {
		t.Error("wrong PIN accepted")
	}
}
