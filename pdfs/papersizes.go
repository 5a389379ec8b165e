package pdfs

type PaperSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}         // 8.5" x 11"
	A4Size     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88977} // 210mm x 297mm
)

// Margins in `pt` around the printable area of a page
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

var DefaultMargins = Margins{Left: 50, Top: 50, Right: 50, Bottom: 50}
