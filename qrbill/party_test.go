package qrbill

import (
	"testing"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/nullable"
)

func TestCreditorFromProfilePrefersStructuredAddress(t *testing.T) {
	profile := &billing.CompanyProfile{
		Name:           "Solartech SA",
		Address:        "ignored when structured fields exist 99",
		PostalCode:     "6814",
		City:           "Lamone",
		StreetName:     nullable.ValidString("Via Industria"),
		BuildingNumber: nullable.ValidString("8"),
	}
	addr := CreditorFromProfile(profile)
	if addr.Street != "Via Industria" || addr.BuildingNumber != "8" {
		t.Fatalf("structured fields must win: %+v", addr)
	}
	if addr.Country != "CH" {
		t.Fatalf("country = %q", addr.Country)
	}
}

func TestCreditorFromProfileFallsBackToFreeText(t *testing.T) {
	profile := &billing.CompanyProfile{
		Name:       "Solartech SA",
		Address:    "Via Industria 8",
		PostalCode: "6814",
		City:       "Lamone",
	}
	addr := CreditorFromProfile(profile)
	if addr.Street != "Via Industria" || addr.BuildingNumber != "8" {
		t.Fatalf("free-text split failed: %+v", addr)
	}
}

func TestDebtorFromRecipient(t *testing.T) {
	r := &billing.Recipient{
		Name:       "Mario",
		Surname:    nullable.ValidString("Rossi"),
		Address:    nullable.ValidString("Via Monte Ceneri 12a"),
		PostalCode: nullable.ValidString("6900"),
		City:       nullable.ValidString("Lugano"),
	}
	addr := DebtorFromRecipient(r)
	if addr.Name != "Mario Rossi" {
		t.Fatalf("name = %q", addr.Name)
	}
	if addr.Street != "Via Monte Ceneri" || addr.BuildingNumber != "12a" {
		t.Fatalf("address split: %+v", addr)
	}
}
