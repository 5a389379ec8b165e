package qrbill

import (
	"strings"
	"testing"
)

func testPayload() *Payload {
	return &Payload{
		IBAN: "CH44 3199 9123 0008 8901 2",
		Creditor: Address{
			Name:           "Solartech SA",
			Street:         "Via Industria",
			BuildingNumber: "8",
			PostalCode:     "6814",
			City:           "Lamone",
			Country:        "CH",
		},
		Debtor: Address{
			Name:       "Mario Rossi",
			Street:     "Via Monte Ceneri",
			PostalCode: "6900",
			City:       "Lugano",
		},
		Amount:        1525,
		Currency:      "CHF",
		ReferenceType: RefTypeNON,
		Message:       "Fattura n. F-2024-001",
	}
}

func TestEncodeStructure(t *testing.T) {
	p := testPayload()
	encoded := p.Encode()
	lines := strings.Split(encoded, "\r\n")
	if len(lines) != 31 {
		t.Fatalf("payload must be 31 lines, got %d", len(lines))
	}
	if lines[0] != "SPC" || lines[1] != "0200" || lines[2] != "1" {
		t.Fatalf("bad envelope: %q %q %q", lines[0], lines[1], lines[2])
	}
	if lines[3] != "CH4431999123000889012" {
		t.Fatalf("IBAN not normalized: %q", lines[3])
	}
	if lines[4] != "S" || lines[5] != "Solartech SA" {
		t.Fatalf("creditor block wrong: %q %q", lines[4], lines[5])
	}
	// ultimate creditor stays empty
	for i := 11; i < 18; i++ {
		if lines[i] != "" {
			t.Fatalf("ultimate creditor line %d must be empty, got %q", i, lines[i])
		}
	}
	if lines[18] != "1525.00" || lines[19] != "CHF" {
		t.Fatalf("amount block wrong: %q %q", lines[18], lines[19])
	}
	if lines[27] != RefTypeNON || lines[28] != "" {
		t.Fatalf("reference block wrong: %q %q", lines[27], lines[28])
	}
	if lines[30] != "EPD" {
		t.Fatalf("trailer must be EPD, got %q", lines[30])
	}
}

func TestEncodeUnknownDebtor(t *testing.T) {
	p := testPayload()
	p.Debtor = Address{}
	lines := strings.Split(p.Encode(), "\r\n")
	for i := 20; i < 27; i++ {
		if lines[i] != "" {
			t.Fatalf("empty debtor line %d must stay empty, got %q", i, lines[i])
		}
	}
}

func TestValidate(t *testing.T) {
	p := testPayload()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := testPayload()
	bad.IBAN = "CH44"
	if err := bad.Validate(); err == nil {
		t.Fatal("short IBAN must be rejected")
	}

	bad = testPayload()
	bad.IBAN = "DE4431999123000889012"
	if err := bad.Validate(); err == nil {
		t.Fatal("non CH/LI IBAN must be rejected")
	}

	bad = testPayload()
	bad.Creditor = Address{}
	if err := bad.Validate(); err == nil {
		t.Fatal("missing creditor must be rejected")
	}

	bad = testPayload()
	bad.Currency = "USD"
	if err := bad.Validate(); err == nil {
		t.Fatal("USD must be rejected")
	}

	bad = testPayload()
	bad.ReferenceType = RefTypeQRR
	bad.Reference = "123"
	if err := bad.Validate(); err == nil {
		t.Fatal("short QRR reference must be rejected")
	}
}

func TestIsQRIBAN(t *testing.T) {
	cases := []struct {
		iban string
		want bool
	}{
		{"CH4431999123000889012", true},  // IID 31999
		{"CH4430000123000889012", true},  // lower bound
		{"CH4432000123000889012", false}, // one past the range
		{"CH4409000123000889012", false}, // ordinary IBAN
		{"CH44", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsQRIBAN(c.iban); got != c.want {
			t.Errorf("IsQRIBAN(%q) = %v, want %v", c.iban, got, c.want)
		}
	}
}

func TestBuildReference(t *testing.T) {
	ref := BuildReference("F-2024-001")
	if len(ref) != 27 {
		t.Fatalf("reference must be 27 chars, got %d", len(ref))
	}
	if !strings.HasSuffix(ref[:26], "2024001") {
		t.Fatalf("digits must survive: %q", ref)
	}
	// the check digit closes the sequence: appending it must yield carry 0
	if mod10Recursive(ref) != 0 {
		t.Fatalf("check digit does not close the sequence: %q", ref)
	}
}

func TestMod10Recursive(t *testing.T) {
	if got := mod10Recursive("0000000000000000000000000"); got != 0 {
		t.Fatalf("all zeros: got %d", got)
	}
	// reference from the Swiss implementation guidelines examples
	if got := mod10Recursive("21000000000313947143000901"); got != 7 {
		t.Fatalf("known sequence: got %d, want 7", got)
	}
}

func TestNormalizeAndFormatIBAN(t *testing.T) {
	if got := NormalizeIBAN("ch44 3199 9123 0008 8901 2"); got != "CH4431999123000889012" {
		t.Fatalf("normalize: got %q", got)
	}
	if got := FormatIBAN("CH4431999123000889012"); got != "CH44 3199 9123 0008 8901 2" {
		t.Fatalf("format: got %q", got)
	}
}

func TestSplitStreet(t *testing.T) {
	cases := []struct {
		in       string
		street   string
		building string
	}{
		{"Via Monte Ceneri 12a", "Via Monte Ceneri", "12a"},
		{"Via Industria 8", "Via Industria", "8"},
		{"Piazza Indipendenza", "Piazza Indipendenza", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		street, building := SplitStreet(c.in)
		if street != c.street || building != c.building {
			t.Errorf("SplitStreet(%q) = (%q, %q), want (%q, %q)", c.in, street, building, c.street, c.building)
		}
	}
}

func TestClampLongFields(t *testing.T) {
	p := testPayload()
	p.Creditor.Name = strings.Repeat("x", 200)
	lines := strings.Split(p.Encode(), "\r\n")
	if len(lines[5]) != maxName {
		t.Fatalf("creditor name must be clamped to %d, got %d", maxName, len(lines[5]))
	}
}
