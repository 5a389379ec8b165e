package pdfs

import (
	"bytes"
	"testing"
)

func TestDrawTableAdvancesCursor(t *testing.T) {
	rc := newTestContext()
	cols := []Column{
		{Header: "Descrizione", Width: 255, Align: "L"},
		{Header: "Importo", Width: 90, Align: "R"},
	}
	rows := [][]string{
		{"Consulenza", "480.00 CHF"},
		{"Trasferta", "45.00 CHF"},
		{"Materiale", "120.00 CHF"},
	}
	style := DefaultTableStyle()
	start := rc.Y
	end := rc.DrawTable(cols, rows, DefaultMargins.Left, style)

	want := start + style.RowHeight*float64(len(rows)+1) // header + rows
	if end != want {
		t.Fatalf("cursor after table = %v, want %v", end, want)
	}
	if rc.Y != end {
		t.Fatalf("returned Y (%v) and cursor (%v) disagree", end, rc.Y)
	}
	if err := rc.Err(); err != nil {
		t.Fatalf("table drawing failed: %v", err)
	}
}

func TestDrawTableEmptyRowsStillDrawsHeader(t *testing.T) {
	rc := newTestContext()
	cols := []Column{{Header: "Descrizione", Width: 200, Align: "L"}}
	start := rc.Y
	end := rc.DrawTable(cols, nil, DefaultMargins.Left, DefaultTableStyle())
	if end != start+DefaultTableStyle().RowHeight {
		t.Fatalf("header-only table must advance one row, got %v", end-start)
	}
	var buf bytes.Buffer
	if err := rc.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestDrawTableBreaksToNewPageAndRepeatsHeader(t *testing.T) {
	rc := newTestContext()
	cols := []Column{{Header: "Descrizione", Width: 200, Align: "L"}}
	style := DefaultTableStyle()

	// room for the header band plus one data row before the bottom margin
	rc.Y = A4Size.Height - DefaultMargins.Bottom - 2.5*style.RowHeight
	rows := make([][]string, 6)
	for i := range rows {
		rows[i] = []string{"Voce"}
	}
	end := rc.DrawTable(cols, rows, DefaultMargins.Left, style)

	if rc.PageCount() != 2 {
		t.Fatalf("overflowing table must continue on a second page, got %d", rc.PageCount())
	}
	// page 2 carries the repeated header band plus the remaining five rows
	want := DefaultMargins.Top + 6*style.RowHeight
	if end != want {
		t.Fatalf("cursor after page break = %v, want %v", end, want)
	}
	if end > A4Size.Height-DefaultMargins.Bottom {
		t.Fatalf("cursor %v ran past the printable bottom %v", end, A4Size.Height-DefaultMargins.Bottom)
	}
	if err := rc.Err(); err != nil {
		t.Fatalf("table drawing failed: %v", err)
	}
}

func TestDrawTableZeroRowHeightFallsBack(t *testing.T) {
	rc := newTestContext()
	cols := []Column{{Header: "A", Width: 100}}
	start := rc.Y
	rc.DrawTable(cols, [][]string{{"x"}}, DefaultMargins.Left, TableStyle{})
	def := DefaultTableStyle().RowHeight
	if rc.Y != start+2*def {
		t.Fatalf("zero row height must fall back to %v, cursor moved %v", def, rc.Y-start)
	}
}
