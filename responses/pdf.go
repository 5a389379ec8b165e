package responses

import (
	"fmt"
	"log"
	"net/http"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func WritePDFBytesWithFilename(w http.ResponseWriter, filename string, PDFBytes []byte) {
	WriteAttachmentHeaders(w, "application/pdf", filename)
	_, err := w.Write(PDFBytes)
	if err != nil {
		log.Printf("[ERROR] writing PDF to response: %v", err)
	}
}

func WriteXLSXBytesWithFilename(w http.ResponseWriter, filename string, XLSXBytes []byte) {
	WriteAttachmentHeaders(w, xlsxContentType, filename)
	_, err := w.Write(XLSXBytes)
	if err != nil {
		log.Printf("[ERROR] writing XLSX to response: %v", err)
	}
}

// WriteAttachmentHeaders write HTTP response headers for a downloadable file. i.e. headers are frozen
func WriteAttachmentHeaders(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK) // Response Header Sent & Frozen
}
