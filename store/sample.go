package store

import (
	"time"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/nullable"
)

// SampleDocument builds a canned document for the example endpoints, rendered
// with the watermark so nobody mistakes it for a real one
func SampleDocument(kind billing.DocumentKind) *billing.DocumentRecord {
	issue := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 1, 0)
	number := "F-2024-001"
	status := "pagata"
	if kind == billing.KindQuote {
		number = "P-2024-001"
		status = "inviato"
	}
	return &billing.DocumentRecord{
		ID:        "00000000-0000-0000-0000-000000000000",
		Kind:      kind,
		Number:    number,
		IssueDate: nullable.ValidTime(issue),
		DueDate:   nullable.ValidTime(due),
		Status:    status,
		Currency:  "CHF",
		Notes:     nullable.ValidString("Pagamento entro 30 giorni.\nGrazie per la fiducia."),
		Recipient: billing.Recipient{
			Name:       "Mario",
			Surname:    nullable.ValidString("Rossi"),
			Address:    nullable.ValidString("Via Monte Ceneri 12"),
			PostalCode: nullable.ValidString("6900"),
			City:       nullable.ValidString("Lugano"),
		},
		LineItems: []billing.LineItem{
			{
				ServiceName: nullable.ValidString("Consulenza"),
				Description: "Analisi impianto fotovoltaico",
				Quantity:    4,
				UnitPrice:   120,
				Amount:      480,
			},
			{
				Description: "Trasferta",
				Quantity:    1,
				UnitPrice:   45,
				Amount:      45,
			},
		},
	}
}

// SampleProfile pairs with SampleDocument so the example render exercises the
// full payment block including the QR code
func SampleProfile() *billing.CompanyProfile {
	return &billing.CompanyProfile{
		Name:        "Solartech SA",
		Address:     "Via Industria 8",
		PostalCode:  "6814",
		City:        "Lamone",
		Canton:      nullable.ValidString("TI"),
		Phone:       "+41 91 600 00 00",
		Email:       "info@solartech.example",
		BankAccount: nullable.ValidString("CH4431999123000889012"),
		BankName:    nullable.ValidString("Banca dello Stato"),
		SwiftBIC:    nullable.ValidString("BSCTCH22"),
	}
}
