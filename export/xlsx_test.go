package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/nullable"
)

func TestWorkbook(t *testing.T) {
	doc := &billing.DocumentRecord{
		Kind:     billing.KindInvoice,
		Number:   "F-2024-042",
		Status:   "pagata",
		Currency: "CHF",
		LineItems: []billing.LineItem{
			{ServiceName: nullable.ValidString("Consulenza"), Description: "Analisi impianto", Quantity: 4, UnitPrice: 120, Amount: 480},
			{Description: "Trasferta", Quantity: 1, UnitPrice: 45, Amount: 45},
		},
	}
	data, err := Workbook(doc)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatal("output is not a zip container")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	got, err := f.GetCellValue(sheetName, "A1")
	if err != nil || got != "Fattura" {
		t.Fatalf("A1 = %q (err %v), want Fattura", got, err)
	}
	got, _ = f.GetCellValue(sheetName, "A4")
	if got != "Consulenza - Analisi impianto" {
		t.Fatalf("first item description = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "A5")
	if got != "Trasferta" {
		t.Fatalf("second item description = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "D7")
	if got != "525.00 CHF" {
		t.Fatalf("total cell = %q", got)
	}
}
