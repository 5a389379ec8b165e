package billing

import (
	"strings"

	"github.com/zeptools/findoc-core/pdfs"
)

// BadgeStyle - fill and label colors for the status badge
type BadgeStyle struct {
	Fill pdfs.RGB
	Text pdfs.RGB
}

var (
	styleDraft     = BadgeStyle{Fill: pdfs.RGB{R: 108, G: 117, B: 125}, Text: white}
	styleSent      = BadgeStyle{Fill: pdfs.RGB{R: 0, G: 123, B: 255}, Text: white}
	stylePaid      = BadgeStyle{Fill: pdfs.RGB{R: 40, G: 167, B: 69}, Text: white}
	styleOverdue   = BadgeStyle{Fill: pdfs.RGB{R: 253, G: 126, B: 20}, Text: white}
	styleRejected  = BadgeStyle{Fill: pdfs.RGB{R: 220, G: 53, B: 69}, Text: white}
	styleCancelled = BadgeStyle{Fill: pdfs.RGB{R: 52, G: 58, B: 64}, Text: white}

	// StyleUnknown is the neutral fallback; an unrecognized status string
	// must never fail a render
	StyleUnknown = BadgeStyle{Fill: pdfs.RGB{R: 173, G: 181, B: 189}, Text: white}

	white = pdfs.RGB{R: 255, G: 255, B: 255}
)

// badgeStyles covers both the invoice and the quote taxonomy, Italian and
// English spellings. Keys are lowercase.
var badgeStyles = map[string]BadgeStyle{
	"draft": styleDraft,
	"bozza": styleDraft,

	"sent":      styleSent,
	"inviata":   styleSent,
	"inviato":   styleSent,
	"pending":   styleSent,
	"in attesa": styleSent,

	"paid":      stylePaid,
	"pagata":    stylePaid,
	"approved":  stylePaid,
	"approvata": stylePaid,
	"approvato": stylePaid,
	"accepted":  stylePaid,
	"accettato": stylePaid,

	"overdue": styleOverdue,
	"scaduta": styleOverdue,
	"scaduto": styleOverdue,

	"rejected":  styleRejected,
	"rifiutata": styleRejected,
	"rifiutato": styleRejected,

	"cancelled": styleCancelled,
	"annullata": styleCancelled,
	"annullato": styleCancelled,
}

// StatusBadgeStyle maps a raw status string to its badge colors,
// falling back to the neutral gray for anything unrecognized
func StatusBadgeStyle(status string) BadgeStyle {
	if s, ok := badgeStyles[strings.ToLower(strings.TrimSpace(status))]; ok {
		return s
	}
	return StyleUnknown
}
