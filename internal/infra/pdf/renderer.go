// Package pdf renders delivery notes as PDF documents using go-pdf/fpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"dnotes/config"
	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"

	"github.com/go-pdf/fpdf"
)

const (
	contentTypePDF = "application/pdf"
	defaultTitle   = "Delivery note"
	defaultFont    = "Helvetica"
	defaultPage    = "A4"
	pageMargin     = 15.0
	qrSizeMM       = 35.0
)

type renderer struct {
	qr       service.QRCodeService
	title    string
	font     string
	pageSize string
}

// NewRenderer creates the delivery note renderer. Signed notes get a verification QR.
func NewRenderer(cfg *config.Config, qr service.QRCodeService) service.DocumentRenderer {
	r := &renderer{qr: qr, title: defaultTitle, font: defaultFont, pageSize: defaultPage}
	if cfg != nil && cfg.PDF != nil {
		if cfg.PDF.Title != "" {
			r.title = cfg.PDF.Title
		}
		if cfg.PDF.Font != "" {
			r.font = cfg.PDF.Font
		}
		if cfg.PDF.PageSize != "" {
			r.pageSize = cfg.PDF.PageSize
		}
	}

	return r
}

func (r *renderer) ContentType() string {
	return contentTypePDF
}

// Render lays out one page: header, issuer, client and project blocks, the note body and the signature box.
func (r *renderer) Render(ctx context.Context, doc *entity.DeliveryNoteDocument) ([]byte, error) {
	if doc == nil || doc.Note == nil {
		return nil, errors.New("pdf: delivery note is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	note := doc.Note
	pdf := fpdf.New("P", "mm", r.pageSize, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle(fmt.Sprintf("%s %d", r.title, note.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	// Header
	pdf.SetFont(r.font, "B", 16)
	pdf.CellFormat(contentW, 9, tr(fmt.Sprintf("%s #%d", r.title, note.ID)), "", 1, "L", false, 0, "")
	pdf.SetFont(r.font, "", 9)
	pdf.CellFormat(contentW, 5, "Date: "+note.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(pageMargin, pdf.GetY(), pageW-pageMargin, pdf.GetY())
	pdf.Ln(3)

	// Parties
	r.section(pdf, tr, contentW, "Issued by", issuerLines(doc))
	if doc.Client != nil {
		r.section(pdf, tr, contentW, "Client", []string{doc.Client.Name, "CIF: " + doc.Client.CIF, doc.Client.Address})
	}
	if doc.Project != nil {
		r.section(pdf, tr, contentW, "Project", []string{
			doc.Project.ProjectCode + " - " + doc.Project.Name,
			doc.Project.Address,
			doc.Project.Email,
		})
	}

	// Body
	labelW := contentW * 0.3
	pdf.SetFont(r.font, "B", 10)
	pdf.CellFormat(labelW, 7, "Format", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-labelW, 7, tr(detailHeader(note)), "B", 1, "L", false, 0, "")
	pdf.SetFont(r.font, "", 10)
	pdf.CellFormat(labelW, 7, note.Format.String(), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-labelW, 7, tr(detailValue(note)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(r.font, "B", 10)
	pdf.CellFormat(contentW, 6, "Description", "", 1, "L", false, 0, "")
	pdf.SetFont(r.font, "", 10)
	pdf.MultiCell(contentW, 5, tr(note.Description), "", "L", false)
	pdf.Ln(6)

	if err := r.signatureBlock(pdf, contentW, note); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf: write document")
	}

	return buf.Bytes(), nil
}

func (r *renderer) section(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string, lines []string) {
	pdf.SetFont(r.font, "B", 10)
	pdf.CellFormat(width, 6, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(r.font, "", 9)
	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.CellFormat(width, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func (r *renderer) signatureBlock(pdf *fpdf.Fpdf, width float64, note *entity.DeliveryNote) error {
	pdf.SetFont(r.font, "B", 10)
	if !note.Signed || note.SignedAt == nil {
		pdf.CellFormat(width, 6, "Pending signature", "", 1, "L", false, 0, "")

		return nil
	}

	pdf.CellFormat(width, 6, "Signed "+note.SignedAt.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	if r.qr == nil {
		return nil
	}

	png, err := r.qr.GenerateVerificationQR(note.ID, *note.SignedAt)
	if err != nil {
		return errors.Wrap(err, "pdf: generate verification QR")
	}

	name := "qr-" + strconv.FormatUint(note.ID, 10)
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, pageMargin, pdf.GetY()+2, qrSizeMM, qrSizeMM, false, opts, 0, "")

	if err := pdf.Error(); err != nil {
		return errors.Wrap(err, "pdf: embed verification QR")
	}

	return nil
}

func issuerLines(doc *entity.DeliveryNoteDocument) []string {
	var lines []string
	if doc.Company != nil && !doc.Company.IsScrubbed() {
		lines = append(lines, doc.Company.Name, "CIF: "+doc.Company.CIF, doc.Company.Address)
	}
	if doc.Owner != nil {
		name := doc.Owner.Name
		if doc.Owner.Surname != "" {
			name += " " + doc.Owner.Surname
		}
		lines = append(lines, name)
		if doc.Owner.NIF != "" {
			lines = append(lines, "NIF: "+doc.Owner.NIF)
		}
		lines = append(lines, doc.Owner.Email)
	}

	return lines
}

func detailHeader(note *entity.DeliveryNote) string {
	if note.Format == entity.FormatHours {
		return "Hours"
	}

	return "Material"
}

func detailValue(note *entity.DeliveryNote) string {
	if note.Format == entity.FormatHours {
		return strconv.Itoa(note.Hours)
	}

	return note.Material
}
