// Package export produces spreadsheet versions of billing documents for
// clients who want to post-process line items instead of reading a PDF.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/pdfs"
)

const sheetName = "Dettaglio"

// Workbook renders the document's line items as a single-sheet XLSX file
func Workbook(doc *billing.DocumentRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: sheet setup: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: style: %w", err)
	}

	head := []any{doc.Kind.Label(), doc.Number, "Stato", doc.Status}
	if err := f.SetSheetRow(sheetName, "A1", &head); err != nil {
		return nil, fmt.Errorf("export: header: %w", err)
	}
	columns := []any{"Descrizione", "Quantita", "Prezzo unitario", "Importo"}
	if err := f.SetSheetRow(sheetName, "A3", &columns); err != nil {
		return nil, fmt.Errorf("export: columns: %w", err)
	}
	_ = f.SetCellStyle(sheetName, "A3", "D3", boldStyle)
	_ = f.SetColWidth(sheetName, "A", "A", 42)
	_ = f.SetColWidth(sheetName, "B", "D", 16)

	row := 4
	for i := range doc.LineItems {
		li := &doc.LineItems[i]
		desc := li.Description
		if !li.ServiceName.IsNil() {
			desc = li.ServiceName.String
			if li.Description != "" {
				desc += " - " + li.Description
			}
		}
		cells := []any{desc, li.Quantity, li.UnitPrice, li.Amount}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, fmt.Errorf("export: row %d: %w", row, err)
		}
		row++
	}

	total := []any{"Totale", "", "", pdfs.FormatCurrency(doc.Total(), doc.Currency)}
	totalCell := fmt.Sprintf("A%d", row+1)
	if err := f.SetSheetRow(sheetName, totalCell, &total); err != nil {
		return nil, fmt.Errorf("export: total: %w", err)
	}
	_ = f.SetCellStyle(sheetName, totalCell, fmt.Sprintf("D%d", row+1), boldStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write: %w", err)
	}
	return buf.Bytes(), nil
}
