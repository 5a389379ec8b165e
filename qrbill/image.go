package qrbill

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EncodePNG validates the payload and renders it as a square PNG of sizePx
// pixels. Errors are recoverable: the document renderer substitutes a
// placeholder box and keeps going.
func EncodePNG(p *Payload, sizePx int) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(p.Encode(), qrcode.Medium, sizePx)
	if err != nil {
		return nil, fmt.Errorf("qrbill: encoding failed: %w", err)
	}
	return png, nil
}
