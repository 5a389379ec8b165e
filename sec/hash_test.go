package sec

import "testing"

func TestHashHexBlake2b(t *testing.T) {
	a := HashHexBlake2b([]byte("hello"))
	b := HashHexBlake2b([]byte("hello"))
	if a != b {
		t.Fatal("digest must be deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("blake2b-256 hex digest must be 64 chars, got %d", len(a))
	}
	if a == HashHexBlake2b([]byte("hello!")) {
		t.Fatal("different inputs must not collide trivially")
	}
}

func TestGenerateOpaqueToken(t *testing.T) {
	tok, err := GenerateOpaqueToken(0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(tok) == 0 {
		t.Fatal("empty token")
	}
	other, _ := GenerateOpaqueToken(0)
	if tok == other {
		t.Fatal("two tokens must not repeat")
	}
}
