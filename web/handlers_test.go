package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zeptools/findoc-core/render"
	"github.com/zeptools/findoc-core/sec"
	"github.com/zeptools/findoc-core/store"
)

func testHandlers() *Handlers {
	return &Handlers{
		Store:       &store.Store{},
		Logos:       store.NewLogoFetcher(nil, nil),
		Renderer:    render.NewRenderer(render.DefaultLayout()),
		ShareSecret: []byte("test-share-secret"),
		ShareTTL:    time.Hour,
	}
}

func testRouter() http.Handler {
	return testHandlers().NewRouter(RouterOpts{})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestExamplePDF(t *testing.T) {
	for _, kind := range []string{"invoice", "quote"} {
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples/"+kind+"/pdf", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", kind, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("%s content type = %q", kind, ct)
		}
		if !strings.HasPrefix(rec.Body.String(), "%PDF") {
			t.Fatalf("%s body is not a PDF", kind)
		}
		cd := rec.Header().Get("Content-Disposition")
		if !strings.HasPrefix(cd, "attachment;") {
			t.Fatalf("%s disposition = %q", kind, cd)
		}
	}
}

func TestExamplePDFUnknownKind(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples/receipt/pdf", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDocumentPDFInvalidID(t *testing.T) {
	// id validation runs before any database access; malformed ids look like
	// missing documents to the caller
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid/pdf", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSharedPDFInvalidToken(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/garbage-token/pdf", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSharedPDFWrongKindClaim(t *testing.T) {
	h := testHandlers()
	token, err := sec.IssueShareToken(h.ShareSecret, "receipt", "some-id", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec := httptest.NewRecorder()
	h.NewRouter(RouterOpts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/"+token+"/pdf", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDebugEchoGating(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandlers().NewRouter(RouterOpts{DebugEcho: true}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/echo", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("echo enabled: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/echo", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("echo disabled: status = %d, want 404", rec.Code)
	}
}
