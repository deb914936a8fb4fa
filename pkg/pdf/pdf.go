// Package pdf renders a printable itinerary of a trip.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"tableflip.dev/wendy/pkg/budget"
	"tableflip.dev/wendy/pkg/trip"
)

// Options tune the rendered document.
type Options struct {
	// ShareURL, when set, is printed and embedded as a QR code.
	ShareURL string
	// Currency is the ISO 4217 code amounts are shown in.
	Currency string
}

const (
	qrSize    = 36.0
	lineH     = 6.0
	pageWidth = 190.0
)

// FileName is the suggested file name of the itinerary of t.
func FileName(t trip.Trip) string {
	return fmt.Sprintf("wendenzo-trip-%s.pdf", t.ID)
}

// Render writes the itinerary of t as an A4 PDF document to w.
func Render(w io.Writer, t trip.Trip, opts Options) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(t.Title, true)
	doc.SetCreator("wendy", true)
	doc.SetAutoPageBreak(true, 15)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 8, fmt.Sprintf("%d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	if opts.ShareURL != "" {
		png, err := qrcode.Encode(opts.ShareURL, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("pdf: qr code: %w", err)
		}
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("share", imageOpts, bytes.NewReader(png))
		doc.ImageOptions("share", 10+pageWidth-qrSize, 10, qrSize, qrSize, false, imageOpts, 0, "")
	}

	header(doc, tr, t, opts)
	for _, d := range t.Days {
		day(doc, tr, t, d, opts.Currency)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}
	return nil
}

func header(doc *gofpdf.Fpdf, tr func(string) string, t trip.Trip, opts Options) {
	textWidth := pageWidth
	if opts.ShareURL != "" {
		textWidth -= qrSize + 4
	}

	doc.SetFont("Arial", "B", 20)
	doc.SetTextColor(20, 20, 20)
	doc.MultiCell(textWidth, 9, tr(t.Title), "", "L", false)

	doc.SetFont("Arial", "", 11)
	doc.SetTextColor(90, 90, 90)
	var sub []string
	if t.Destination != "" {
		sub = append(sub, t.Destination)
	}
	if t.StartDate != "" || t.EndDate != "" {
		sub = append(sub, strings.Trim(t.StartDate+" - "+t.EndDate, " -"))
	}
	if len(sub) > 0 {
		doc.MultiCell(textWidth, lineH, tr(strings.Join(sub, " • ")), "", "L", false)
	}

	s := budget.Summarize(t)
	line := fmt.Sprintf("%d giorni • %d attività • Totale %s", s.Days, s.Items, budget.Format(s.Total, opts.Currency))
	if s.Budget != nil {
		line += " • Budget " + budget.Format(*s.Budget, opts.Currency)
		if s.Remaining != nil {
			line += " • Residuo " + budget.Format(*s.Remaining, opts.Currency)
		}
	}
	doc.MultiCell(textWidth, lineH, tr(line), "", "L", false)

	if opts.ShareURL != "" {
		doc.SetFont("Arial", "U", 9)
		doc.SetTextColor(30, 80, 160)
		doc.CellFormat(textWidth, lineH, opts.ShareURL, "", 1, "L", false, 0, opts.ShareURL)
	}

	if doc.GetY() < 10+qrSize+2 && opts.ShareURL != "" {
		doc.SetY(10 + qrSize + 2)
	}
	doc.Ln(4)
}

func day(doc *gofpdf.Fpdf, tr func(string) string, t trip.Trip, d trip.Day, currency string) {
	doc.SetFillColor(235, 240, 250)
	doc.SetTextColor(20, 20, 20)
	doc.SetFont("Arial", "B", 13)
	title := d.Label
	if d.Date != "" {
		title += " • " + d.Date
	}
	total := budget.Format(budget.DayTotal(d), currency)
	doc.CellFormat(pageWidth-40, 8, tr(title), "", 0, "L", true, 0, "")
	doc.SetFont("Arial", "", 11)
	if budget.DayOver(t, d) {
		doc.SetTextColor(190, 30, 30)
	}
	doc.CellFormat(40, 8, tr(total), "", 1, "R", true, 0, "")
	doc.SetTextColor(20, 20, 20)
	doc.Ln(1)

	if len(d.Items) == 0 {
		doc.SetFont("Arial", "I", 10)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(pageWidth, lineH, tr("Nessuna attività"), "", 1, "L", false, 0, "")
		doc.Ln(3)
		return
	}

	for _, it := range d.Items {
		mark := "[ ]"
		if it.Done {
			mark = "[x]"
		}
		cost := ""
		if it.Cost != nil {
			cost = budget.Format(*it.Cost, currency)
		}
		doc.SetFont("Courier", "", 10)
		doc.CellFormat(10, lineH, mark, "", 0, "L", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.CellFormat(16, lineH, tr(it.Time), "", 0, "L", false, 0, "")
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(pageWidth-10-16-34, lineH, tr(it.Title), "", 0, "L", false, 0, it.MapURL)
		doc.SetFont("Arial", "", 10)
		doc.CellFormat(34, lineH, tr(cost), "", 1, "R", false, 0, "")
		if it.Note != "" {
			doc.SetFont("Arial", "I", 9)
			doc.SetTextColor(90, 90, 90)
			doc.SetX(doc.GetX() + 26)
			doc.MultiCell(pageWidth-26, 5, tr(it.Note), "", "L", false)
			doc.SetTextColor(20, 20, 20)
		}
	}
	doc.Ln(3)
}
