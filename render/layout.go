package render

import "github.com/zeptools/findoc-core/pdfs"

// Layout - the hand-tuned geometry of a rendered document. All values are
// in pt, calibrated for A4/Helvetica. Loadable from config/.layout.json.
type Layout struct {
	Paper  pdfs.PaperSize `json:"-"`
	Margin pdfs.Margins   `json:"margin"`

	RowHeight        float64 `json:"row_height"`
	PaymentMinHeight float64 `json:"payment_min_height"` // space needed to keep the payment block on-page
	NotesMinHeight   float64 `json:"notes_min_height"`   // below this the notes section is silently omitted
	QRSize           float64 `json:"qr_size"`
	LogoWidth        float64 `json:"logo_width"`
	LogoHeight       float64 `json:"logo_height"`
}

func DefaultLayout() Layout {
	return Layout{
		Paper:            pdfs.A4Size,
		Margin:           pdfs.DefaultMargins,
		RowHeight:        20,
		PaymentMinHeight: 220,
		NotesMinHeight:   90,
		QRSize:           140,
		LogoWidth:        110,
		LogoHeight:       50,
	}
}

// applyDefaults backfills zero fields so a partial layout config stays usable
func (l Layout) applyDefaults() Layout {
	def := DefaultLayout()
	if l.Paper.Width == 0 || l.Paper.Height == 0 {
		l.Paper = def.Paper
	}
	if l.Margin == (pdfs.Margins{}) {
		l.Margin = def.Margin
	}
	if l.RowHeight <= 0 {
		l.RowHeight = def.RowHeight
	}
	if l.PaymentMinHeight <= 0 {
		l.PaymentMinHeight = def.PaymentMinHeight
	}
	if l.NotesMinHeight <= 0 {
		l.NotesMinHeight = def.NotesMinHeight
	}
	if l.QRSize <= 0 {
		l.QRSize = def.QRSize
	}
	if l.LogoWidth <= 0 {
		l.LogoWidth = def.LogoWidth
	}
	if l.LogoHeight <= 0 {
		l.LogoHeight = def.LogoHeight
	}
	return l
}
