package pdfs

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func newTestContext() *RenderContext {
	return NewRenderContext(A4Size, DefaultMargins)
}

func TestNewRenderContext(t *testing.T) {
	rc := newTestContext()
	if rc.PageCount() != 1 {
		t.Fatalf("fresh context must have one page, got %d", rc.PageCount())
	}
	if rc.Y != DefaultMargins.Top {
		t.Fatalf("cursor must start at the top margin, got %v", rc.Y)
	}
	wantWidth := A4Size.Width - DefaultMargins.Left - DefaultMargins.Right
	if rc.ContentWidth() != wantWidth {
		t.Fatalf("ContentWidth = %v, want %v", rc.ContentWidth(), wantWidth)
	}
}

func TestAvailableSpaceAndAddPage(t *testing.T) {
	rc := newTestContext()
	before := rc.AvailableSpace()
	rc.Y += 100
	if got := rc.AvailableSpace(); got != before-100 {
		t.Fatalf("AvailableSpace after advancing = %v, want %v", got, before-100)
	}
	rc.AddPage()
	if rc.PageCount() != 2 {
		t.Fatalf("page count after AddPage = %d", rc.PageCount())
	}
	if rc.Y != DefaultMargins.Top {
		t.Fatalf("AddPage must reset the cursor, got %v", rc.Y)
	}
}

func TestDrawImageRejectsBadBytes(t *testing.T) {
	rc := newTestContext()
	if rc.DrawImage(nil, 50, 50, 100) {
		t.Fatal("nil bytes must not draw")
	}
	if rc.DrawImage([]byte("definitely not an image"), 50, 50, 100) {
		t.Fatal("garbage bytes must not draw")
	}
	// the drawing stack must stay usable afterwards
	if err := rc.Err(); err != nil {
		t.Fatalf("bad image bytes poisoned the context: %v", err)
	}
	var buf bytes.Buffer
	if err := rc.Output(&buf); err != nil {
		t.Fatalf("output after rejected image: %v", err)
	}
}

func TestDrawImageAcceptsPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	rc := newTestContext()
	if !rc.DrawImage(pngBuf.Bytes(), 50, 50, 100) {
		t.Fatal("valid PNG must draw")
	}
	if err := rc.Err(); err != nil {
		t.Fatalf("context error after drawing: %v", err)
	}
}

func TestOutputProducesPDF(t *testing.T) {
	rc := newTestContext()
	rc.DrawText("hello", 50, 50, TextOptions{Size: SizeBody})
	rc.DrawBadge("pagata", 400, 50, 90, 18, RGB{R: 40, G: 167, B: 69}, RGB{R: 255, G: 255, B: 255})
	rc.DrawLine(50, 100, 300, 100, RGB{R: 200, G: 200, B: 200}, 0.75)
	rc.DrawPlaceholder(50, 120, 110, 50, "LOGO")
	rc.DrawWatermark("ESEMPIO")
	if err := rc.Err(); err != nil {
		t.Fatalf("drawing failed: %v", err)
	}
	var buf bytes.Buffer
	if err := rc.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output missing PDF header, got % x", buf.Bytes()[:8])
	}
}
