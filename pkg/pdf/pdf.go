package pdf

import (
	"io"
	"log"

	"github.com/go-pdf/fpdf"
)

// A4 portrait page metrics in millimeters.
const (
	pageWidth    = 210
	pageHeight   = 297
	marginLeft   = 14
	marginRight  = 14
	contentWidth = pageWidth - marginLeft - marginRight
	breakAt      = 270
)

// Report-wide palette.
var (
	colorHeader = rgb{30, 41, 59}   // slate band
	colorAccent = rgb{250, 204, 21} // brand yellow
	colorText   = rgb{0, 0, 0}
	colorMuted  = rgb{100, 116, 139}
	colorRed    = rgb{220, 53, 69}
	colorYellow = rgb{255, 193, 7}
	colorGreen  = rgb{25, 135, 84}
)

type rgb struct{ r, g, b int }

// Builder composes a paginated report from sequential drawing calls:
// filled header bands, wrapped text blocks, tables, rating bars, and
// embedded images.
type Builder struct {
	doc   *fpdf.Fpdf
	tr    func(string) string
	brand string
	y     float64
}

// NewBuilder starts a new A4 portrait report carrying the given brand
// title in every page band. The core fonts are cp1252, so all text runs
// through the unicode translator to keep umlauts intact.
func NewBuilder(brand string) *Builder {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	return &Builder{
		doc:   doc,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
		brand: brand,
	}
}

func (b *Builder) text(x, y float64, s string) {
	b.doc.Text(x, y, b.tr(s))
}

func (b *Builder) width(s string) float64 {
	return b.doc.GetStringWidth(b.tr(s))
}

// AddPage opens a new page with the brand band and a right-aligned
// report subtitle.
func (b *Builder) AddPage(subtitle string) {
	b.doc.AddPage()
	b.doc.SetFillColor(colorHeader.r, colorHeader.g, colorHeader.b)
	b.doc.Rect(0, 0, pageWidth, 30, "F")
	b.doc.SetFont("Helvetica", "B", 22)
	b.doc.SetTextColor(255, 255, 255)
	b.text(marginLeft, 20, b.brand)
	if subtitle != "" {
		b.doc.SetFontSize(14)
		b.doc.SetTextColor(colorAccent.r, colorAccent.g, colorAccent.b)
		b.text(pageWidth-marginRight-b.width(subtitle), 20, subtitle)
	}
	b.doc.SetTextColor(colorText.r, colorText.g, colorText.b)
	b.y = 42
}

// ensureSpace breaks to a fresh page when fewer than h millimeters
// remain below the cursor.
func (b *Builder) ensureSpace(h float64) {
	if b.y+h > breakAt {
		b.doc.AddPage()
		b.y = 20
	}
}

// Title draws a centered headline.
func (b *Builder) Title(text string) {
	b.ensureSpace(12)
	b.doc.SetFont("Helvetica", "B", 16)
	b.text((pageWidth-b.width(text))/2, b.y, text)
	b.y += 12
}

// SectionTitle draws a filled section header bar.
func (b *Builder) SectionTitle(text string) {
	b.ensureSpace(14)
	b.doc.SetFillColor(colorHeader.r, colorHeader.g, colorHeader.b)
	b.doc.Rect(marginLeft, b.y-5, contentWidth, 8, "F")
	b.doc.SetFont("Helvetica", "B", 12)
	b.doc.SetTextColor(255, 255, 255)
	b.text(marginLeft+2, b.y+0.5, text)
	b.doc.SetTextColor(colorText.r, colorText.g, colorText.b)
	b.y += 10
}

// TextRow prints two label/value pairs on one line, left and right column.
func (b *Builder) TextRow(left, right string) {
	b.ensureSpace(7)
	b.doc.SetFont("Helvetica", "", 10)
	b.text(marginLeft, b.y, left)
	if right != "" {
		b.text(110, b.y, right)
	}
	b.y += 7
}

// TextBlock prints a bold caption followed by wrapped body text.
func (b *Builder) TextBlock(caption, body string) {
	if body == "" {
		return
	}
	b.ensureSpace(12)
	if caption != "" {
		b.doc.SetFont("Helvetica", "B", 10)
		b.text(marginLeft, b.y, caption)
		b.y += 6
	}
	b.doc.SetFont("Helvetica", "", 10)
	for _, line := range b.doc.SplitText(b.tr(body), contentWidth) {
		b.ensureSpace(6)
		b.doc.Text(marginLeft, b.y, line)
		b.y += 5
	}
	b.y += 3
}

// Table renders a header row and data rows with the given column widths.
func (b *Builder) Table(headers []string, widths []float64, rows [][]string) {
	b.ensureSpace(10)
	b.doc.SetFont("Helvetica", "B", 9)
	x := float64(marginLeft)
	for i, h := range headers {
		b.text(x, b.y, h)
		x += widths[i]
	}
	b.y += 2
	b.doc.SetDrawColor(colorMuted.r, colorMuted.g, colorMuted.b)
	b.doc.Line(marginLeft, b.y, marginLeft+contentWidth, b.y)
	b.y += 5

	b.doc.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		b.ensureSpace(6)
		x = marginLeft
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.doc.Text(x, b.y, truncate(b.doc, b.tr(cell), widths[i]-2))
			x += widths[i]
		}
		b.y += 6
	}
	b.y += 4
}

// RatingBar draws a labeled proportional bar for a 1-10 score,
// color-banded red (1-3), yellow (4-6), green (7-10).
func (b *Builder) RatingBar(label string, value int) {
	if value < 1 {
		value = 1
	}
	if value > 10 {
		value = 10
	}
	b.ensureSpace(7)
	b.doc.SetFont("Helvetica", "", 9)
	b.text(marginLeft, b.y, label)

	barX := float64(marginLeft + 70)
	barW := 100.0
	b.doc.SetFillColor(226, 232, 240)
	b.doc.Rect(barX, b.y-3.5, barW, 4, "F")

	c := colorGreen
	switch {
	case value <= 3:
		c = colorRed
	case value <= 6:
		c = colorYellow
	}
	b.doc.SetFillColor(c.r, c.g, c.b)
	b.doc.Rect(barX, b.y-3.5, barW*float64(value)/10, 4, "F")

	b.doc.Text(barX+barW+4, b.y, itoa(value))
	b.y += 6
}

// EmbedImage places an image file best-effort: a broken or unreadable
// asset is logged and skipped, leaving the rest of the report intact.
func (b *Builder) EmbedImage(path string, width float64) {
	if path == "" {
		return
	}
	b.ensureSpace(width + 10)
	opts := fpdf.ImageOptions{ReadDpi: true}
	b.doc.ImageOptions(path, marginLeft, b.y, width, 0, false, opts, 0, "")
	if b.doc.Err() {
		log.Printf("pdf: skipping image %s: %v", path, b.doc.Error())
		b.doc.ClearError()
		return
	}
	b.y += width * 0.75
}

// Spacer advances the cursor.
func (b *Builder) Spacer(h float64) {
	b.y += h
}

// Output writes the finished document.
func (b *Builder) Output(w io.Writer) error {
	return b.doc.Output(w)
}

func truncate(doc *fpdf.Fpdf, s string, maxWidth float64) string {
	for doc.GetStringWidth(s) > maxWidth && len(s) > 3 {
		s = s[:len(s)-4] + "..."
	}
	return s
}

func itoa(v int) string {
	if v == 10 {
		return "10"
	}
	return string(rune('0' + v))
}
