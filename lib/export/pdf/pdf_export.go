package pdfexport

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	formapimodels "bygg-tools-backend/models/api/form"
)

// GenerateFormPdf renders a single form as an A4 document for printing and
// archiving. The built-in core fonts cover the Norwegian alphabet via the
// cp1252 translator.
func GenerateFormPdf(form formapimodels.FormSummary) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateFormPdf panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	title := form.Title
	if form.Number != "" {
		title = fmt.Sprintf("%s %s", form.Number, form.Title)
	}
	pdf.MultiCell(0, 9, tr(title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	writeField(pdf, tr, "Type", form.FormType.ToHuman())
	writeField(pdf, tr, "Status", form.StatusName)
	writeField(pdf, tr, "Opprettet", form.CreatedAt.Format("02.01.2006 15:04"))
	if form.CreatedBy != nil {
		writeField(pdf, tr, "Opprettet av", fullName(*form.CreatedBy))
	}
	if form.Handler != nil {
		writeField(pdf, tr, "Saksbehandler", fullName(*form.Handler))
	}

	if len(form.Content) != 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, tr("Innhold"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		keys := make([]string, 0, len(form.Content))
		for k := range form.Content {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeField(pdf, tr, k, contentValue(form.Content[k]))
		}
	}

	if form.Solution != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, tr("Løsning"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(form.Solution), "", "L", false)
	}
	if form.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, tr("Notater"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(form.Notes), "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(45, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func fullName(u formapimodels.UserRef) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", u.FirstName, u.LastName))
}

func contentValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
