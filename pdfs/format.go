package pdfs

import (
	"fmt"
	"strings"

	"github.com/zeptools/findoc-core/nullable"
)

// Fixed locale choices for the rendered documents (Swiss-Italian conventions).
// A bad or missing value formats as a sentinel string; formatting never fails
// a render.
const (
	DateLayout      = "02.01.2006"
	DateUnspecified = "Non specificata"
	DateInvalid     = "Data non valida"
	DefaultCurrency = "CHF"
)

// FormatDate renders dd.mm.yyyy. A nil value is "unspecified"; a non-nil
// zero timestamp can only come from a bad column value and renders as
// invalid.
func FormatDate(t nullable.Time) string {
	if t.IsNil() {
		return DateUnspecified
	}
	if t.Time.IsZero() {
		return DateInvalid
	}
	return t.Time.Format(DateLayout)
}

// FormatCurrency renders an amount with two decimals, apostrophe thousands
// grouping and the ISO code as a suffix, e.g. "1'525.00 CHF"
func FormatCurrency(amount float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	intPart, decPart, _ := strings.Cut(s, ".")
	return fmt.Sprintf("%s%s.%s %s", sign, groupThousands(intPart), decPart, code)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('\'')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
