// Package qrbill builds the Swiss QR-bill payment payload (SPC, version
// 0200): a 31-line CRLF-separated descriptor carrying creditor, debtor,
// amount, currency and reference, rendered as a scannable code on invoices.
package qrbill

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zeptools/findoc-core/billing"
)

const (
	qrType  = "SPC"
	version = "0200"
	coding  = "1" // latin character set
	trailer = "EPD"

	// structured address marker
	addressTypeStructured = "S"

	RefTypeQRR = "QRR"
	RefTypeNON = "NON"

	// field length caps from the Swiss implementation guidelines
	maxName    = 70
	maxStreet  = 70
	maxBldg    = 16
	maxZip     = 16
	maxCity    = 35
	maxCountry = 2
	maxMessage = 140

	referenceLength = 27 // 26 digits + mod10 check digit
)

// Address - structured payment party address
type Address struct {
	Name           string
	Street         string
	BuildingNumber string
	PostalCode     string
	City           string
	Country        string
}

func (a Address) empty() bool {
	return a.Name == ""
}

func (a Address) lines() []string {
	if a.empty() {
		return []string{"", "", "", "", "", "", ""}
	}
	country := a.Country
	if country == "" {
		country = "CH"
	}
	return []string{
		addressTypeStructured,
		clamp(a.Name, maxName),
		clamp(a.Street, maxStreet),
		clamp(a.BuildingNumber, maxBldg),
		clamp(a.PostalCode, maxZip),
		clamp(a.City, maxCity),
		clamp(country, maxCountry),
	}
}

// Payload is the full input of one payment code
type Payload struct {
	IBAN          string
	Creditor      Address
	Debtor        Address // zero value = "debtor unknown", allowed
	Amount        float64
	Currency      string
	ReferenceType string // RefTypeQRR or RefTypeNON
	Reference     string
	Message       string // unstructured additional information
}

// Validate rejects inputs that cannot produce a scannable code. Only hard
// requirements are checked; everything else degrades via field clamping.
func (p *Payload) Validate() error {
	iban := NormalizeIBAN(p.IBAN)
	if len(iban) != 21 {
		return fmt.Errorf("qrbill: IBAN must be 21 characters, got %d", len(iban))
	}
	if !strings.HasPrefix(iban, "CH") && !strings.HasPrefix(iban, "LI") {
		return fmt.Errorf("qrbill: IBAN country must be CH or LI")
	}
	if p.Creditor.empty() {
		return fmt.Errorf("qrbill: creditor name is required")
	}
	if p.Currency != "CHF" && p.Currency != "EUR" {
		return fmt.Errorf("qrbill: currency must be CHF or EUR, got %q", p.Currency)
	}
	if p.ReferenceType == RefTypeQRR && len(p.Reference) != referenceLength {
		return fmt.Errorf("qrbill: QRR reference must be %d characters", referenceLength)
	}
	return nil
}

// Encode emits the 31-line SPC payload with CRLF separators
func (p *Payload) Encode() string {
	refType := p.ReferenceType
	if refType == "" {
		refType = RefTypeNON
	}
	lines := make([]string, 0, 31)
	lines = append(lines, qrType, version, coding, NormalizeIBAN(p.IBAN))
	lines = append(lines, p.Creditor.lines()...)
	lines = append(lines, "", "", "", "", "", "", "") // ultimate creditor, unused
	lines = append(lines, fmt.Sprintf("%.2f", p.Amount), clamp(p.Currency, 3))
	lines = append(lines, p.Debtor.lines()...)
	lines = append(lines, refType, p.Reference, clamp(p.Message, maxMessage), trailer)
	return strings.Join(lines, "\r\n")
}

// NormalizeIBAN strips spaces and uppercases
func NormalizeIBAN(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// FormatIBAN renders an IBAN in display form, grouped by 4
func FormatIBAN(s string) string {
	iban := NormalizeIBAN(s)
	var b strings.Builder
	for i, r := range iban {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsQRIBAN reports whether the institution id (digits 5-9) falls in the
// QR-IBAN range 30000-31999; only those accounts accept QRR references
func IsQRIBAN(iban string) bool {
	iban = NormalizeIBAN(iban)
	if len(iban) < 9 {
		return false
	}
	iid := iban[4:9]
	for _, r := range iid {
		if r < '0' || r > '9' {
			return false
		}
	}
	return iid >= "30000" && iid < "32000"
}

// BuildReference turns a document number into a 27-character QR reference:
// its digits, zero-padded to 26, plus the recursive mod10 check digit
func BuildReference(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > referenceLength-1 {
		d = d[len(d)-(referenceLength-1):]
	}
	d = strings.Repeat("0", referenceLength-1-len(d)) + d
	return d + fmt.Sprintf("%d", mod10Recursive(d))
}

// mod10Recursive computes the check digit used by Swiss QR references (the
// ESR carry-table algorithm)
func mod10Recursive(digits string) int {
	table := [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}
	carry := 0
	for _, r := range digits {
		carry = table[(carry+int(r-'0'))%10]
	}
	return (10 - carry) % 10
}

// CreditorFromProfile builds the creditor address from the structured
// company fields, falling back to splitting the free-text address
func CreditorFromProfile(c *billing.CompanyProfile) Address {
	street, bldg := c.StreetName.ForceValue(), c.BuildingNumber.ForceValue()
	if street == "" {
		street, bldg = SplitStreet(c.Address)
	}
	return Address{
		Name:           c.Name,
		Street:         street,
		BuildingNumber: bldg,
		PostalCode:     c.PostalCode,
		City:           c.City,
		Country:        "CH",
	}
}

// DebtorFromRecipient builds the debtor address with the same free-text
// fallback pattern as the creditor
func DebtorFromRecipient(r *billing.Recipient) Address {
	street, bldg := SplitStreet(r.Address.ForceValue())
	return Address{
		Name:           r.FullName(),
		Street:         street,
		BuildingNumber: bldg,
		PostalCode:     r.PostalCode.ForceValue(),
		City:           r.City.ForceValue(),
		Country:        "CH",
	}
}

// SplitStreet separates a trailing house number from a free-text street,
// e.g. "Via Monte Ceneri 12a" -> ("Via Monte Ceneri", "12a")
func SplitStreet(address string) (street, building string) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ""
	}
	idx := strings.LastIndexByte(address, ' ')
	if idx <= 0 {
		return address, ""
	}
	tail := address[idx+1:]
	if tail != "" && tail[0] >= '0' && tail[0] <= '9' {
		return address[:idx], tail
	}
	return address, ""
}

func clamp(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
