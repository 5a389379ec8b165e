package qrbill

import (
	"bytes"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	png, err := EncodePNG(testPayload(), 256)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("output is not a PNG (first bytes: % x)", png[:4])
	}
}

func TestEncodePNGRejectsInvalidPayload(t *testing.T) {
	p := testPayload()
	p.IBAN = "not-an-iban"
	if _, err := EncodePNG(p, 256); err == nil {
		t.Fatal("invalid payload must not encode")
	}
}
