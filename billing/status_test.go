package billing

import (
	"testing"

	"github.com/zeptools/findoc-core/pdfs"
)

func TestStatusBadgeStyle(t *testing.T) {
	green := pdfs.RGB{R: 40, G: 167, B: 69}

	if got := StatusBadgeStyle("pagata"); got.Fill != green {
		t.Fatalf("pagata fill = %+v, want %+v", got.Fill, green)
	}
	if got := StatusBadgeStyle("paid"); got.Fill != green {
		t.Fatalf("english alias must share the style, got %+v", got.Fill)
	}
	// lookup is case- and whitespace-insensitive
	if got := StatusBadgeStyle("  PAGATA "); got.Fill != green {
		t.Fatalf("normalized lookup failed, got %+v", got.Fill)
	}
	if StatusBadgeStyle("scaduta") == StatusBadgeStyle("inviata") {
		t.Fatal("overdue and sent must not share a style")
	}
}

func TestStatusBadgeStyleUnknownFallsBack(t *testing.T) {
	for _, status := range []string{"", "boh", "in lavorazione"} {
		if got := StatusBadgeStyle(status); got != StyleUnknown {
			t.Errorf("StatusBadgeStyle(%q) = %+v, want the neutral fallback", status, got)
		}
	}
}
