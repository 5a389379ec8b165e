// Package web exposes the document rendering endpoints: PDF and XLSX
// downloads, share links and the watermarked examples.
package web

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/db/kvdb"
	"github.com/zeptools/findoc-core/export"
	"github.com/zeptools/findoc-core/render"
	"github.com/zeptools/findoc-core/responses"
	"github.com/zeptools/findoc-core/sec"
	"github.com/zeptools/findoc-core/store"
)

const renderCacheTTL = 60 * time.Second

type Handlers struct {
	Store    *store.Store
	Logos    *store.LogoFetcher
	Renderer *render.Renderer
	Cache    kvdb.Client // optional, short-lived rendered-bytes cache

	ShareSecret []byte
	ShareTTL    time.Duration
}

// DocumentPDF streams the rendered document as a download
func (h *Handlers) DocumentPDF(kind billing.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := h.loadDocument(w, r, kind, r.PathValue("id"))
		if !ok {
			return
		}
		h.servePDF(w, r, doc, render.Options{})
	}
}

// DocumentXLSX streams the line items as a spreadsheet download
func (h *Handlers) DocumentXLSX(kind billing.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := h.loadDocument(w, r, kind, r.PathValue("id"))
		if !ok {
			return
		}
		data, err := export.Workbook(doc)
		if err != nil {
			log.Printf("[ERROR] xlsx export failed for %s %s: %v", kind, doc.ID, err)
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "export failed")
			return
		}
		responses.WriteXLSXBytesWithFilename(w, doc.Filename("xlsx"), data)
	}
}

type shareResponse struct {
	Token     string `json:"token"`
	Path      string `json:"path"`
	ExpiresAt string `json:"expires_at"`
}

// CreateShareLink issues a time-limited capability token for one document
func (h *Handlers) CreateShareLink(kind billing.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := h.loadDocument(w, r, kind, r.PathValue("id"))
		if !ok {
			return
		}
		token, err := sec.IssueShareToken(h.ShareSecret, string(kind), doc.ID, h.ShareTTL)
		if err != nil {
			log.Printf("[ERROR] share token issue failed: %v", err)
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "share link failed")
			return
		}
		responses.EncodeWriteJSON(w, http.StatusCreated, shareResponse{
			Token:     token,
			Path:      "/share/" + token + "/pdf",
			ExpiresAt: time.Now().Add(h.ShareTTL).Format(time.RFC3339),
		})
	}
}

// SharedPDF resolves a share token and streams the document it grants
func (h *Handlers) SharedPDF(w http.ResponseWriter, r *http.Request) {
	kindStr, docID, err := sec.ParseShareToken(h.ShareSecret, r.PathValue("token"))
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid or expired share link")
		return
	}
	kind := billing.DocumentKind(kindStr)
	if !kind.Valid() {
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid or expired share link")
		return
	}
	doc, ok := h.loadDocument(w, r, kind, docID)
	if !ok {
		return
	}
	h.servePDF(w, r, doc, render.Options{})
}

// ExamplePDF renders canned data with the sample watermark
func (h *Handlers) ExamplePDF(w http.ResponseWriter, r *http.Request) {
	kind := billing.DocumentKind(r.PathValue("kind"))
	if !kind.Valid() {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "unknown document kind")
		return
	}
	doc := store.SampleDocument(kind)
	profile := store.SampleProfile()
	rendered, err := h.Renderer.Render(doc, profile, nil, render.Options{Sample: true})
	if err != nil {
		log.Printf("[ERROR] example render failed: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "render failed")
		return
	}
	responses.WritePDFBytesWithFilename(w, rendered.Filename, rendered.Bytes)
}

func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "ok", Message: "healthy"})
}

// loadDocument fetches and maps store errors onto HTTP statuses; on failure
// the response is already written and ok is false
func (h *Handlers) loadDocument(w http.ResponseWriter, r *http.Request, kind billing.DocumentKind, id string) (*billing.DocumentRecord, bool) {
	doc, err := h.Store.Document(r.Context(), kind, id)
	if err != nil {
		switch {
		// malformed ids are indistinguishable from missing documents for callers
		case errors.Is(err, store.ErrInvalidID), errors.Is(err, store.ErrNotFound):
			responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "document not found")
		default:
			log.Printf("[ERROR] loading %s %q: %v", kind, id, err)
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "document lookup failed")
		}
		return nil, false
	}
	return doc, true
}

// servePDF renders (or reuses recently rendered bytes) and streams them.
// The ETag is the content digest, so unchanged documents revalidate cheaply.
func (h *Handlers) servePDF(w http.ResponseWriter, r *http.Request, doc *billing.DocumentRecord, opts render.Options) {
	cacheKey := "render:" + string(doc.Kind) + ":" + doc.ID
	var data []byte
	if h.Cache != nil {
		if val, found, err := h.Cache.Get(r.Context(), cacheKey); err == nil && found {
			data = []byte(val)
		}
	}
	if data == nil {
		profile, err := h.Store.Profile(r.Context())
		if err != nil {
			log.Printf("[WARN] company profile load failed, rendering without: %v", err)
			profile = nil
		}
		var logo []byte
		if profile != nil && !profile.LogoURL.IsNil() {
			logo = h.Logos.Fetch(r.Context(), profile.LogoURL.String)
		}
		rendered, err := h.Renderer.Render(doc, profile, logo, opts)
		if err != nil {
			log.Printf("[ERROR] render failed for %s %s: %v", doc.Kind, doc.ID, err)
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "render failed")
			return
		}
		data = rendered.Bytes
		if h.Cache != nil {
			if err := h.Cache.Set(r.Context(), cacheKey, data, renderCacheTTL); err != nil {
				log.Printf("[WARN] render cache write failed: %v", err)
			}
		}
	}

	etag := `"` + sec.HashHexBlake2b(data) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	responses.WritePDFBytesWithFilename(w, doc.Filename("pdf"), data)
}
