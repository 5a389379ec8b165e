package sec

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-for-share-links")

func TestShareTokenRoundTrip(t *testing.T) {
	token, err := IssueShareToken(testSecret, "invoice", "6a1f6f3e-8a3a-4a7e-9b1a-111111111111", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	kind, docID, err := ParseShareToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if kind != "invoice" || docID != "6a1f6f3e-8a3a-4a7e-9b1a-111111111111" {
		t.Fatalf("claims mismatch: %q %q", kind, docID)
	}
}

func TestShareTokensForSameDocumentDiffer(t *testing.T) {
	a, err := IssueShareToken(testSecret, "invoice", "same-doc", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	b, err := IssueShareToken(testSecret, "invoice", "same-doc", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if a == b {
		t.Fatal("two links to the same document must not share a token")
	}
}

func TestShareTokenWrongSecret(t *testing.T) {
	token, err := IssueShareToken(testSecret, "quote", "some-id", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := ParseShareToken([]byte("a different secret"), token); err == nil {
		t.Fatal("token must not verify under a different secret")
	}
}

func TestShareTokenExpired(t *testing.T) {
	token, err := IssueShareToken(testSecret, "invoice", "some-id", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := ParseShareToken(testSecret, token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestShareTokenGarbage(t *testing.T) {
	if _, _, err := ParseShareToken(testSecret, "not.a.jwt"); err == nil {
		t.Fatal("garbage must be rejected")
	}
}
