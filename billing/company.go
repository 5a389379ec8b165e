package billing

import (
	"strings"

	"github.com/zeptools/findoc-core/nullable"
)

// CompanyProfile - the issuing company, at most one row. A missing profile
// is tolerated by the renderer (blank issuer fields), a missing BankAccount
// suppresses the payment code block entirely.
type CompanyProfile struct {
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	PostalCode string          `json:"postal_code"`
	City       string          `json:"city"`
	Canton     nullable.String `json:"canton"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	LogoURL    nullable.String `json:"logo_url"`

	BankAccount    nullable.String `json:"bank_account"` // IBAN; gates the QR-bill
	BankName       nullable.String `json:"bank_name"`
	SwiftBIC       nullable.String `json:"swift_bic"`
	StreetName     nullable.String `json:"street_name"`     // structured address, preferred over Address
	BuildingNumber nullable.String `json:"building_number"` // structured address
}

// TargetFields in SELECT column order:
// name, address, postal_code, city, canton, phone, email, logo_url,
// bank_account, bank_name, swift_bic, street_name, building_number
func (c *CompanyProfile) TargetFields() []any {
	return []any{
		&c.Name, &c.Address, &c.PostalCode, &c.City, &c.Canton, &c.Phone,
		&c.Email, &c.LogoURL, &c.BankAccount, &c.BankName, &c.SwiftBIC,
		&c.StreetName, &c.BuildingNumber,
	}
}

// Location - "postalcode city (canton)" as printed in the document header
func (c *CompanyProfile) Location() string {
	loc := strings.TrimSpace(c.PostalCode + " " + c.City)
	if !c.Canton.IsNil() {
		loc += " (" + c.Canton.String + ")"
	}
	return loc
}
