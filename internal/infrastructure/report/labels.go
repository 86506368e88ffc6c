// Package report renders subscriber postal labels as an A4 PDF sheet.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/tcworld/magadmin/internal/domain/subscriber"
)

// Sheet geometry in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 10.0
	columns      = 2
	rowsPerPage  = 5
	labelsOnPage = columns * rowsPerPage
	lineHeight   = 7.0
	padding      = 2.0
	fontSize     = 11.0
	ellipsis     = "..."
)

var (
	columnWidth = (pageWidth - 2*margin) / columns
	boxHeight   = (pageHeight - 2*margin) / rowsPerPage
)

type LabelRenderer struct {
	fontFamily string
}

func NewLabelRenderer(fontFamily string) *LabelRenderer {
	if fontFamily == "" {
		fontFamily = "Arial"
	}
	return &LabelRenderer{
		fontFamily: fontFamily,
	}
}

// Render lays rows out two columns by five rows per page, one outlined box
// per label. An empty row set yields a single blank page.
func (r *LabelRenderer) Render(rows []subscriber.ReportRow, charLimit int) ([]byte, error) {
	pdf := r.build(rows, charLimit)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out labels: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *LabelRenderer) build(rows []subscriber.ReportRow, charLimit int) *fpdf.Fpdf {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetFont(r.fontFamily, "", fontSize)
	pdf.AddPage()

	for i, row := range rows {
		if i > 0 && i%labelsOnPage == 0 {
			pdf.AddPage()
		}
		x, y := labelOrigin(i)
		pdf.Rect(x, y, columnWidth, boxHeight, "D")

		pdf.SetXY(x+padding, y+padding)
		for _, line := range LabelLines(row, charLimit) {
			pdf.CellFormat(columnWidth-2*padding, lineHeight, encode(enc, line), "", 1, "L", false, 0, "")
			pdf.SetX(x + padding)
		}
	}
	return pdf
}

// labelOrigin is the top-left corner of the i-th label on its page. Labels
// fill left to right, then top to bottom.
func labelOrigin(i int) (float64, float64) {
	column := i % columns
	row := (i / columns) % rowsPerPage
	return margin + float64(column)*columnWidth, margin + float64(row)*boxHeight
}

// LabelLines returns the printed lines of one label: name, the first two
// address lines, "city, district", "state, pincode" and phone. Blank values
// are skipped and values longer than charLimit are cut with an ellipsis.
func LabelLines(row subscriber.ReportRow, charLimit int) []string {
	values := []string{
		row.Name,
		row.AddressLine(0),
		row.AddressLine(1),
		joinPair(row.City, row.District),
		joinPair(row.State, row.Pincode),
		row.Phone,
	}

	lines := make([]string, 0, len(values))
	for _, v := range values {
		if blank(v) {
			continue
		}
		lines = append(lines, truncate(v, charLimit))
	}
	return lines
}

func joinPair(a, b string) string {
	return strings.Trim(a+", "+b, ", ")
}

func blank(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "null", "None":
		return true
	}
	return false
}

func truncate(v string, limit int) string {
	runes := []rune(v)
	if limit < 1 || len(runes) <= limit {
		return v
	}
	keep := limit - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + ellipsis
}

// encode converts UTF-8 to the Windows-1252 bytes the core fonts expect.
// Characters outside the code page become the encoder's replacement.
func encode(enc *encoding.Encoder, s string) string {
	out, err := enc.String(s)
	if err != nil {
		return s
	}
	return out
}
