package sqldb

import "testing"

func TestReplaceStaticPlaceholders(t *testing.T) {
	sql := "SELECT * FROM invoices WHERE id = ? AND status = ?"

	if got := ReplaceStaticPlaceholders(sql, '?'); got != sql {
		t.Fatalf("mysql dialect must pass through, got %q", got)
	}
	want := "SELECT * FROM invoices WHERE id = $1 AND status = $2"
	if got := ReplaceStaticPlaceholders(sql, '$'); got != want {
		t.Fatalf("pgsql rewrite = %q, want %q", got, want)
	}
	if got := ReplaceStaticPlaceholders("no placeholders", '$'); got != "no placeholders" {
		t.Fatalf("no-op rewrite = %q", got)
	}
}
