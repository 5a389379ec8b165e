package pdfs

import (
	"testing"
	"time"

	"github.com/zeptools/findoc-core/nullable"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nullable.Time{}); got != DateUnspecified {
		t.Fatalf("nil date: got %q, want %q", got, DateUnspecified)
	}
	d := nullable.ValidTime(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	if got := FormatDate(d); got != "15.03.2024" {
		t.Fatalf("valid date: got %q", got)
	}
	if got := FormatDate(nullable.ValidTime(time.Time{})); got != DateInvalid {
		t.Fatalf("zero timestamp: got %q, want %q", got, DateInvalid)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{0, "CHF", "0.00 CHF"},
		{1525, "CHF", "1'525.00 CHF"},
		{1234567.891, "EUR", "1'234'567.89 EUR"},
		{999.999, "CHF", "1'000.00 CHF"},
		{-45.5, "CHF", "-45.50 CHF"},
		{120, "", "120.00 CHF"}, // empty code falls back to the default
	}
	for _, c := range cases {
		if got := FormatCurrency(c.amount, c.code); got != c.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", c.amount, c.code, got, c.want)
		}
	}
}
