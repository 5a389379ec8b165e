// Package render sequences billing document sections into finished PDF
// bytes: header, metadata grid, status badge, line-item table, totals,
// payment block, notes and footer. One Render call owns one RenderContext;
// concurrent renders share nothing.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/pdfs"
	"github.com/zeptools/findoc-core/rw"
)

var (
	brandColor   = pdfs.RGB{R: 46, G: 78, B: 60}
	textColor    = pdfs.RGB{R: 30, G: 30, B: 30}
	mutedColor   = pdfs.RGB{R: 120, G: 120, B: 120}
	hairlineGray = pdfs.RGB{R: 200, G: 200, B: 200}
)

// Renderer is stateless apart from its layout; safe to share across renders
type Renderer struct {
	Layout Layout
}

func NewRenderer(layout Layout) *Renderer {
	return &Renderer{Layout: layout.applyDefaults()}
}

// Options - per-render flags
type Options struct {
	Sample bool // demo data: stamps an "ESEMPIO" watermark on every page
}

// RenderedDocument is the immutable result of one render: the finished PDF
// bytes plus the suggested attachment filename.
type RenderedDocument struct {
	Bytes    []byte
	Filename string
}

// WriteTo implements io.WriterTo
func (d *RenderedDocument) WriteTo(w io.Writer) (int64, error) {
	cw := rw.NewCountWriter(w)
	_, err := cw.Write(d.Bytes)
	return cw.BytesWritten(), err
}

// Render lays the document out in a single pass. Missing optional data
// (logo, profile, bank account) degrades visibly but never fails; only an
// unexpected drawing-stack error aborts, and then no partial bytes are
// returned.
func (r *Renderer) Render(doc *billing.DocumentRecord, company *billing.CompanyProfile, logo []byte, opts Options) (*RenderedDocument, error) {
	layout := r.Layout.applyDefaults()
	rc := pdfs.NewRenderContext(layout.Paper, layout.Margin)

	r.header(rc, doc, company, logo)
	r.metadataGrid(rc, doc)
	r.itemsTable(rc, doc)
	r.totals(rc, doc)
	r.paymentBlock(rc, doc, company)
	r.notesSection(rc, doc)

	if opts.Sample {
		for p := 1; p <= rc.PageCount(); p++ {
			rc.SelectPage(p)
			rc.DrawWatermark("ESEMPIO")
		}
	}
	r.footer(rc, company)

	if err := rc.Err(); err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}
	var buf bytes.Buffer
	if err := rc.Output(&buf); err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}
	return &RenderedDocument{
		Bytes:    buf.Bytes(),
		Filename: doc.Filename("pdf"),
	}, nil
}

// header: logo (or placeholder) top-left, company identity top-right, then
// the document title, number and status badge
func (r *Renderer) header(rc *pdfs.RenderContext, doc *billing.DocumentRecord, company *billing.CompanyProfile, logo []byte) {
	l := r.Layout
	left := l.Margin.Left
	top := rc.Y

	if !rc.DrawImage(logo, left, top, l.LogoWidth) {
		rc.DrawPlaceholder(left, top, l.LogoWidth, l.LogoHeight, "LOGO")
	}

	const identityWidth = 220.0
	ix := l.Paper.Width - l.Margin.Right - identityWidth
	iy := top
	if company != nil {
		rc.DrawText(company.Name, ix, iy, pdfs.TextOptions{Width: identityWidth, Align: "R", Style: "B", Size: pdfs.SizeSection, Color: textColor})
		iy += 14
		for _, line := range []string{company.Address, company.Location(), company.Phone, company.Email} {
			if line == "" {
				continue
			}
			rc.DrawText(line, ix, iy, pdfs.TextOptions{Width: identityWidth, Align: "R", Size: pdfs.SizeBody, Color: mutedColor})
			iy += 11
		}
	}
	rc.Y = top + maxf(l.LogoHeight, iy-top) + 24

	rc.DrawText(doc.Kind.Label(), left, rc.Y, pdfs.TextOptions{Style: "B", Size: pdfs.SizeTitle, Color: brandColor})
	style := billing.StatusBadgeStyle(doc.Status)
	rc.DrawBadge(doc.Status, l.Paper.Width-l.Margin.Right-90, rc.Y+4, 90, 18, style.Fill, style.Text)
	rc.Y += pdfs.SizeTitle*1.2 + 4
	rc.DrawText("N. "+doc.Number, left, rc.Y, pdfs.TextOptions{Size: pdfs.SizeBody, Color: mutedColor})
	rc.Y += 24
}

// metadataGrid: recipient block on the left, date rows on the right
func (r *Renderer) metadataGrid(rc *pdfs.RenderContext, doc *billing.DocumentRecord) {
	l := r.Layout
	left := l.Margin.Left
	half := rc.ContentWidth() / 2
	top := rc.Y

	rc.DrawText("DESTINATARIO", left, top, pdfs.TextOptions{Style: "B", Size: pdfs.SizeCaption, Color: mutedColor})
	y := top + 12
	rc.DrawText(doc.Recipient.FullName(), left, y, pdfs.TextOptions{Width: half - 10, Style: "B", Size: pdfs.SizeBody, Color: textColor})
	y += 12
	if !doc.Recipient.Address.IsNil() {
		rc.DrawText(doc.Recipient.Address.String, left, y, pdfs.TextOptions{Width: half - 10, Size: pdfs.SizeBody, Color: textColor})
		y += 12
	}
	cityLine := joinNonEmpty(doc.Recipient.PostalCode.ForceValue(), doc.Recipient.City.ForceValue())
	if cityLine != "" {
		rc.DrawText(cityLine, left, y, pdfs.TextOptions{Width: half - 10, Size: pdfs.SizeBody, Color: textColor})
		y += 12
	}

	dx := left + half
	dueLabel := "Data scadenza"
	if doc.Kind == billing.KindQuote {
		dueLabel = "Valido fino al"
	}
	dy := top
	rc.DrawText("DETTAGLI", dx, dy, pdfs.TextOptions{Style: "B", Size: pdfs.SizeCaption, Color: mutedColor})
	dy += 12
	rc.DrawText("Data emissione: "+pdfs.FormatDate(doc.IssueDate), dx, dy, pdfs.TextOptions{Size: pdfs.SizeBody, Color: textColor})
	dy += 12
	rc.DrawText(dueLabel+": "+pdfs.FormatDate(doc.DueDate), dx, dy, pdfs.TextOptions{Size: pdfs.SizeBody, Color: textColor})
	dy += 12
	rc.DrawText("Valuta: "+currencyOrDefault(doc.Currency), dx, dy, pdfs.TextOptions{Size: pdfs.SizeBody, Color: textColor})
	dy += 12

	rc.Y = maxf(y, dy) + 18
}

func (r *Renderer) itemsTable(rc *pdfs.RenderContext, doc *billing.DocumentRecord) {
	cols := []pdfs.Column{
		{Header: "Descrizione", Width: 255, Align: "L"},
		{Header: "Qta", Width: 60, Align: "C"},
		{Header: "Prezzo unit.", Width: 90, Align: "R"},
		{Header: "Importo", Width: 90, Align: "R"},
	}
	rows := make([][]string, 0, len(doc.LineItems))
	for i := range doc.LineItems {
		li := &doc.LineItems[i]
		desc := li.Description
		if !li.ServiceName.IsNil() {
			desc = li.ServiceName.String
			if li.Description != "" {
				desc += " - " + li.Description
			}
		}
		rows = append(rows, []string{
			desc,
			strconv.FormatFloat(li.Quantity, 'f', -1, 64),
			pdfs.FormatCurrency(li.UnitPrice, doc.Currency),
			pdfs.FormatCurrency(li.Amount, doc.Currency),
		})
	}
	style := pdfs.DefaultTableStyle()
	style.RowHeight = r.Layout.RowHeight
	rc.DrawTable(cols, rows, r.Layout.Margin.Left, style)
	rc.Y += 10
}

func (r *Renderer) totals(rc *pdfs.RenderContext, doc *billing.DocumentRecord) {
	l := r.Layout
	// separator, amount line and trailing gap
	const totalsHeight = 40.0
	if rc.AvailableSpace() < totalsHeight {
		rc.AddPage()
	}
	right := l.Paper.Width - l.Margin.Right
	rc.DrawLine(right-240, rc.Y, right, rc.Y, hairlineGray, 0.75)
	rc.Y += 8
	rc.DrawText("Totale: "+pdfs.FormatCurrency(doc.Total(), doc.Currency), right-240, rc.Y, pdfs.TextOptions{
		Width: 240, Align: "R", Style: "B", Size: pdfs.SizeSection + 2, Color: textColor,
	})
	rc.Y += (pdfs.SizeSection + 2) * 1.2 + 14
}

// notesSection renders the free-text notes only when enough room remains;
// otherwise it is silently omitted, never pushed to a new page
func (r *Renderer) notesSection(rc *pdfs.RenderContext, doc *billing.DocumentRecord) {
	if doc.Notes.IsNil() || doc.Notes.String == "" {
		return
	}
	if rc.AvailableSpace() < r.Layout.NotesMinHeight {
		return
	}
	rc.DrawText("NOTE", r.Layout.Margin.Left, rc.Y, pdfs.TextOptions{Style: "B", Size: pdfs.SizeCaption, Color: mutedColor})
	rc.Y += 12
	for _, line := range strings.Split(doc.Notes.String, "\n") {
		if rc.AvailableSpace() < 24 {
			break
		}
		rc.DrawText(line, r.Layout.Margin.Left, rc.Y, pdfs.TextOptions{Size: pdfs.SizeBody, Color: textColor})
		rc.Y += 11
	}
	rc.Y += 8
}

// footer stamps the trailing marker on every physical page the document spans
func (r *Renderer) footer(rc *pdfs.RenderContext, company *billing.CompanyProfile) {
	l := r.Layout
	line := "Documento generato il " + time.Now().Format("02.01.2006 15:04")
	if company != nil && company.Name != "" {
		line += " · " + company.Name
	}
	y := l.Paper.Height - l.Margin.Bottom + 14
	for p := 1; p <= rc.PageCount(); p++ {
		rc.SelectPage(p)
		rc.DrawText(line, l.Margin.Left, y, pdfs.TextOptions{Width: rc.ContentWidth(), Align: "C", Size: pdfs.SizeCaption, Color: mutedColor})
	}
}

func currencyOrDefault(code string) string {
	if code == "" {
		return pdfs.DefaultCurrency
	}
	return code
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
