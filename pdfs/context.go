package pdfs

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // side-effect: decoder registration
	_ "image/jpeg" // side-effect
	_ "image/png"  // side-effect
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RGB color with 0-255 components, matching the gofpdf color setters.
type RGB struct {
	R, G, B int
}

// Font sizes per semantic role, in `pt`
const (
	SizeTitle   = 22.0
	SizeSection = 11.0
	SizeBody    = 9.0
	SizeCaption = 7.0
)

const baseFont = "Helvetica"

// TextOptions configures a single DrawText call.
// Width = 0 means "up to the right margin".
type TextOptions struct {
	Width float64
	Align string // "L", "C", "R". Empty = "L"
	Style string // "" regular, "B" bold
	Size  float64
	Color RGB
}

// RectOptions configures rectangle drawing (stroke-only when neither flag is set).
type RectOptions struct {
	Fill        bool
	FillColor   RGB
	Stroke      bool
	StrokeColor RGB
	LineWidth   float64
}

// RenderContext owns all page, cursor and graphics state for one document
// render. It is not safe for concurrent use; each render builds its own.
type RenderContext struct {
	Paper  PaperSize
	Margin Margins
	Y      float64 // running vertical cursor, top-left origin

	pdf      *gofpdf.Fpdf
	tr       func(string) string // latin-1 translator for core fonts
	imageSeq int
}

func NewRenderContext(paper PaperSize, margin Margins) *RenderContext {
	pdf := gofpdf.New("P", "pt", paper.Name, "")
	pdf.SetAutoPageBreak(false, 0) // page breaks are explicit layout decisions
	pdf.SetMargins(margin.Left, margin.Top, margin.Right)
	pdf.AddPage()
	return &RenderContext{
		Paper:  paper,
		Margin: margin,
		Y:      margin.Top,
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// ContentWidth - printable width between the side margins
func (rc *RenderContext) ContentWidth() float64 {
	return rc.Paper.Width - rc.Margin.Left - rc.Margin.Right
}

// AvailableSpace - vertical room left between the cursor and the bottom margin
func (rc *RenderContext) AvailableSpace() float64 {
	return rc.Paper.Height - rc.Margin.Bottom - rc.Y
}

// AddPage starts a fresh page and resets the cursor to the top margin
func (rc *RenderContext) AddPage() {
	rc.pdf.AddPage()
	rc.Y = rc.Margin.Top
}

func (rc *RenderContext) PageCount() int {
	return rc.pdf.PageCount()
}

// SelectPage switches the drawing target to an already-emitted page (1-based)
func (rc *RenderContext) SelectPage(index int) {
	rc.pdf.SetPage(index)
}

// DrawText draws a single line at (x, y) where y is the TOP of the text box.
// Content longer than the width is clipped, not wrapped.
func (rc *RenderContext) DrawText(text string, x, y float64, opts TextOptions) {
	size := opts.Size
	if size <= 0 {
		size = SizeBody
	}
	width := opts.Width
	if width <= 0 {
		width = rc.Paper.Width - rc.Margin.Right - x
	}
	align := opts.Align
	if align == "" {
		align = "L"
	}
	rc.pdf.SetFont(baseFont, opts.Style, size)
	rc.pdf.SetTextColor(opts.Color.R, opts.Color.G, opts.Color.B)
	rc.pdf.SetXY(x, y)
	rc.pdf.CellFormat(width, size*1.2, rc.tr(text), "", 0, align, false, 0, "")
}

func (rc *RenderContext) DrawRect(x, y, w, h float64, opts RectOptions) {
	rc.pdf.SetLineWidth(rc.lineWidth(opts))
	rc.applyRectColors(opts)
	rc.pdf.Rect(x, y, w, h, rectStyle(opts))
}

// DrawRoundedRect draws a rectangle with all four corners rounded by r
func (rc *RenderContext) DrawRoundedRect(x, y, w, h, r float64, opts RectOptions) {
	rc.pdf.SetLineWidth(rc.lineWidth(opts))
	rc.applyRectColors(opts)
	rc.pdf.RoundedRect(x, y, w, h, r, "1234", rectStyle(opts))
}

func (rc *RenderContext) DrawLine(x1, y1, x2, y2 float64, color RGB, width float64) {
	if width <= 0 {
		width = 0.5
	}
	rc.pdf.SetDrawColor(color.R, color.G, color.B)
	rc.pdf.SetLineWidth(width)
	rc.pdf.Line(x1, y1, x2, y2)
}

// DrawImage registers the raw bytes and draws them at (x, y) scaled to width w
// (height follows the aspect ratio). Returns false without touching the page
// when the bytes are missing or not a decodable PNG/JPEG/GIF, so the caller
// can substitute a placeholder instead. The drawing stack is never poisoned
// by bad image data.
func (rc *RenderContext) DrawImage(data []byte, x, y, w float64) bool {
	if len(data) == 0 {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	rc.imageSeq++
	name := fmt.Sprintf("img%d", rc.imageSeq)
	opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(format)}
	rc.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if rc.pdf.Err() {
		return false
	}
	rc.pdf.ImageOptions(name, x, y, w, 0, false, opts, 0, "")
	return !rc.pdf.Err()
}

// DrawPlaceholder draws a bordered box with a centered caption, the degraded
// stand-in for a missing logo or failed payment code.
func (rc *RenderContext) DrawPlaceholder(x, y, w, h float64, caption string) {
	rc.DrawRect(x, y, w, h, RectOptions{Stroke: true, StrokeColor: RGB{R: 180, G: 180, B: 180}, LineWidth: 0.75})
	rc.DrawText(caption, x, y+h/2-SizeCaption*0.6, TextOptions{
		Width: w,
		Align: "C",
		Size:  SizeCaption,
		Color: RGB{R: 150, G: 150, B: 150},
	})
}

// DrawBadge draws a rounded, filled badge with a centered uppercase label
func (rc *RenderContext) DrawBadge(label string, x, y, w, h float64, fill, text RGB) {
	rc.DrawRoundedRect(x, y, w, h, 3, RectOptions{Fill: true, FillColor: fill})
	rc.DrawText(strings.ToUpper(label), x, y+(h-SizeBody*1.2)/2, TextOptions{
		Width: w,
		Align: "C",
		Style: "B",
		Size:  SizeBody,
		Color: text,
	})
}

// DrawWatermark stamps a large, light, diagonal label across the current
// page without touching the cursor
func (rc *RenderContext) DrawWatermark(text string) {
	rc.pdf.TransformBegin()
	rc.pdf.TransformRotate(45, rc.Paper.Width/2, rc.Paper.Height/2)
	rc.pdf.SetFont(baseFont, "B", 96)
	rc.pdf.SetTextColor(225, 228, 225)
	rc.pdf.SetXY(rc.Margin.Left, rc.Paper.Height/2-48)
	rc.pdf.CellFormat(rc.ContentWidth(), 96, rc.tr(text), "", 0, "C", false, 0, "")
	rc.pdf.TransformEnd()
}

// PushTranslate opens a graphics state with a coordinate translation.
// Must be balanced with Pop; the translation never leaks past it.
func (rc *RenderContext) PushTranslate(dx, dy float64) {
	rc.pdf.TransformBegin()
	rc.pdf.TransformTranslate(dx, dy)
}

func (rc *RenderContext) Pop() {
	rc.pdf.TransformEnd()
}

// Err reports the first error the drawing stack recorded, if any
func (rc *RenderContext) Err() error {
	return rc.pdf.Error()
}

// Output finalizes the document and streams the bytes
func (rc *RenderContext) Output(w io.Writer) error {
	return rc.pdf.Output(w)
}

func (rc *RenderContext) lineWidth(opts RectOptions) float64 {
	if opts.LineWidth > 0 {
		return opts.LineWidth
	}
	return 0.5
}

func (rc *RenderContext) applyRectColors(opts RectOptions) {
	if opts.Fill {
		rc.pdf.SetFillColor(opts.FillColor.R, opts.FillColor.G, opts.FillColor.B)
	}
	if opts.Stroke || !opts.Fill {
		rc.pdf.SetDrawColor(opts.StrokeColor.R, opts.StrokeColor.G, opts.StrokeColor.B)
	}
}

func rectStyle(opts RectOptions) string {
	switch {
	case opts.Fill && opts.Stroke:
		return "FD"
	case opts.Fill:
		return "F"
	default:
		return "D"
	}
}
