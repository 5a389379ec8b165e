package pdfs

// Column describes one fixed-width table column. The widths are absolute
// (pt) and their sum must not exceed ContentWidth; cell text longer than the
// column is clipped, not wrapped.
type Column struct {
	Header string
	Width  float64
	Align  string // "L", "C", "R"
}

// TableStyle bundles the visual knobs for DrawTable
type TableStyle struct {
	RowHeight  float64
	HeaderFill RGB
	HeaderText RGB
	Stripe     RGB // background of even-indexed data rows
	TextColor  RGB
}

func DefaultTableStyle() TableStyle {
	return TableStyle{
		RowHeight:  20,
		HeaderFill: RGB{R: 46, G: 78, B: 60},
		HeaderText: RGB{R: 255, G: 255, B: 255},
		Stripe:     RGB{R: 244, G: 246, B: 244},
		TextColor:  RGB{R: 30, G: 30, B: 30},
	}
}

// DrawTable renders a filled header band followed by the data rows at the
// current cursor, starting at x. Even-indexed rows get the stripe
// background; the header band never does. A row that would cross the bottom
// margin moves to a fresh page where the header band repeats, so the cursor
// never leaves the printable area. It advances below the last row and the
// new Y is returned. An empty row set still renders the header.
func (rc *RenderContext) DrawTable(cols []Column, rows [][]string, x float64, style TableStyle) float64 {
	if style.RowHeight <= 0 {
		style.RowHeight = DefaultTableStyle().RowHeight
	}
	tableWidth := 0.0
	for _, c := range cols {
		tableWidth += c.Width
	}

	headerBand := func() {
		rc.DrawRect(x, rc.Y, tableWidth, style.RowHeight, RectOptions{Fill: true, FillColor: style.HeaderFill})
		cx := x
		for _, c := range cols {
			rc.drawCell(c.Header, cx, c.Width, c.Align, style.RowHeight, "B", style.HeaderText)
			cx += c.Width
		}
		rc.Y += style.RowHeight
	}
	headerBand()

	for i, row := range rows {
		if rc.AvailableSpace() < style.RowHeight {
			rc.AddPage()
			headerBand()
		}
		if i%2 == 0 {
			rc.DrawRect(x, rc.Y, tableWidth, style.RowHeight, RectOptions{Fill: true, FillColor: style.Stripe})
		}
		cx := x
		for j, c := range cols {
			if j >= len(row) {
				break
			}
			rc.drawCell(row[j], cx, c.Width, c.Align, style.RowHeight, "", style.TextColor)
			cx += c.Width
		}
		rc.Y += style.RowHeight
	}
	return rc.Y
}

func (rc *RenderContext) drawCell(text string, x, width float64, align string, rowHeight float64, fontStyle string, color RGB) {
	const pad = 4.0
	rc.DrawText(text, x+pad, rc.Y+(rowHeight-SizeBody*1.2)/2, TextOptions{
		Width: width - 2*pad,
		Align: align,
		Style: fontStyle,
		Size:  SizeBody,
		Color: color,
	})
}
