package render

import (
	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/pdfs"
	"github.com/zeptools/findoc-core/qrbill"
)

// paymentBlock renders bank coordinates and the Swiss QR payment code.
// Without a configured bank account it degrades to a single warning line.
// When the remaining space cannot fit the whole block it moves to a fresh
// page, leaving a continuation notice behind; the block itself is never split.
func (r *Renderer) paymentBlock(rc *pdfs.RenderContext, doc *billing.DocumentRecord, company *billing.CompanyProfile) {
	l := r.Layout
	left := l.Margin.Left

	if company == nil || company.BankAccount.IsNil() || company.BankAccount.String == "" {
		rc.DrawText("Nessun conto bancario configurato: coordinate di pagamento non disponibili.",
			left, rc.Y, pdfs.TextOptions{Size: pdfs.SizeBody, Color: mutedColor})
		rc.Y += 20
		return
	}

	if rc.AvailableSpace() < l.PaymentMinHeight {
		rc.DrawText("I dettagli di pagamento continuano alla pagina successiva.",
			left, rc.Y, pdfs.TextOptions{Size: pdfs.SizeCaption, Color: mutedColor})
		rc.AddPage()
	} else {
		rc.DrawLine(left, rc.Y, l.Paper.Width-l.Margin.Right, rc.Y, hairlineGray, 0.75)
		rc.Y += 12
	}

	rc.DrawText("PAGAMENTO", left, rc.Y, pdfs.TextOptions{Style: "B", Size: pdfs.SizeCaption, Color: mutedColor})
	rc.Y += 14

	iban := company.BankAccount.String
	payload := &qrbill.Payload{
		IBAN:     iban,
		Creditor: qrbill.CreditorFromProfile(company),
		Debtor:   qrbill.DebtorFromRecipient(&doc.Recipient),
		Amount:   doc.Total(),
		Currency: currencyOrDefault(doc.Currency),
		Message:  doc.Kind.Label() + " n. " + doc.Number,
	}
	if qrbill.IsQRIBAN(iban) {
		payload.ReferenceType = qrbill.RefTypeQRR
		payload.Reference = qrbill.BuildReference(doc.Number)
	} else {
		payload.ReferenceType = qrbill.RefTypeNON
	}

	qrX := l.Paper.Width - l.Margin.Right - l.QRSize
	qrY := rc.Y
	if png, err := qrbill.EncodePNG(payload, 512); err == nil {
		// code and caption share one translated origin
		rc.PushTranslate(qrX, qrY)
		if !rc.DrawImage(png, 0, 0, l.QRSize) {
			rc.DrawPlaceholder(0, 0, l.QRSize, l.QRSize, "QR non disponibile")
		}
		rc.DrawText("Codice QR di pagamento", 0, l.QRSize+4, pdfs.TextOptions{
			Width: l.QRSize, Align: "C", Size: pdfs.SizeCaption, Color: mutedColor,
		})
		rc.Pop()
	} else {
		rc.DrawPlaceholder(qrX, qrY, l.QRSize, l.QRSize, "QR non disponibile")
	}

	textWidth := qrX - left - 20
	ty := rc.Y
	for _, row := range r.paymentRows(doc, company, payload) {
		rc.DrawText(row[0], left, ty, pdfs.TextOptions{Width: 90, Style: "B", Size: pdfs.SizeBody, Color: textColor})
		rc.DrawText(row[1], left+90, ty, pdfs.TextOptions{Width: textWidth - 90, Size: pdfs.SizeBody, Color: textColor})
		ty += 14
	}

	rc.Y = maxf(ty, qrY+l.QRSize+16) + 8
}

// paymentRows assembles the label/value pairs of the bank coordinates block,
// skipping rows whose value is not configured
func (r *Renderer) paymentRows(doc *billing.DocumentRecord, company *billing.CompanyProfile, payload *qrbill.Payload) [][2]string {
	rows := [][2]string{
		{"Beneficiario", company.Name},
		{"IBAN", qrbill.FormatIBAN(company.BankAccount.String)},
	}
	if !company.BankName.IsNil() && company.BankName.String != "" {
		rows = append(rows, [2]string{"Banca", company.BankName.String})
	}
	if !company.SwiftBIC.IsNil() && company.SwiftBIC.String != "" {
		rows = append(rows, [2]string{"BIC", company.SwiftBIC.String})
	}
	rows = append(rows, [2]string{"Importo", pdfs.FormatCurrency(doc.Total(), doc.Currency)})
	if payload.ReferenceType == qrbill.RefTypeQRR {
		rows = append(rows, [2]string{"Riferimento", payload.Reference})
	} else {
		rows = append(rows, [2]string{"Riferimento", doc.Kind.Label() + " n. " + doc.Number})
	}
	return rows
}
