package render

import (
	"bytes"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"resume-builder/resume/layout"
)

const (
	PDFFileName    = "resume.pdf"
	PDFContentType = "application/pdf"

	pdfCreator = "resume-builder"
)

// PDFOptions controls document metadata.
type PDFOptions struct {
	// CreatedAt is written as the creation date. Zero means now.
	CreatedAt time.Time
}

// pdfCanvas is the subset of *gofpdf.Fpdf the layout pass draws with.
type pdfCanvas interface {
	SetFont(familyStr, styleStr string, size float64)
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
	Ln(h float64)
	GetY() float64
	SetX(x float64)
	Line(x1, y1, x2, y2 float64)
	SetLineWidth(width float64)
	SplitLines(txt []byte, w float64) [][]byte
	GetPageSize() (width, height float64)
	GetMargins() (left, top, right, bottom float64)
}

// PDF draws doc on A4 pages and writes the file to w.
func PDF(w io.Writer, doc layout.Document, opts PDFOptions) error {
	created := opts.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(created.UTC())
	pdf.SetCatalogSort(true)
	pdf.SetCreator(pdfCreator, true)
	pdf.SetTitle(doc.Header.Name+" resume", true)
	pdf.AddPage()

	drawDocument(pdf, pdf.UnicodeTranslatorFromDescriptor(""), doc)
	if pdf.Err() {
		return renderError(FormatPDF, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return renderError(FormatPDF, err)
	}
	return nil
}

// PDFBytes renders doc into memory.
func PDFBytes(doc layout.Document, opts PDFOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := PDF(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfLayout struct {
	canvas pdfCanvas
	tr     func(string) string
	left   float64
	right  float64
	width  float64
}

// drawDocument walks the layout tree top to bottom. The cursor only moves
// through CellFormat and Ln so page breaks stay with the engine.
func drawDocument(canvas pdfCanvas, tr func(string) string, doc layout.Document) {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	pageWidth, _ := canvas.GetPageSize()
	left, _, right, _ := canvas.GetMargins()
	l := &pdfLayout{
		canvas: canvas,
		tr:     tr,
		left:   left,
		right:  pageWidth - right,
		width:  pageWidth - left - right,
	}

	l.header(doc.Header)
	for _, section := range doc.Sections {
		l.section(section)
	}
}

func (l *pdfLayout) header(header layout.Header) {
	l.canvas.SetFont(pdfFontFamily, "B", pdfNameSize)
	l.canvas.CellFormat(0, pdfNameAdvance, l.tr(header.Name), "", 1, "C", false, 0, "")
	if contact := header.ContactLine(); contact != "" {
		l.canvas.SetFont(pdfFontFamily, "", pdfContactSize)
		l.canvas.CellFormat(0, pdfContactAdvance, l.tr(contact), "", 1, "C", false, 0, "")
	}
}

func (l *pdfLayout) section(section layout.Section) {
	l.canvas.SetFont(pdfFontFamily, "B", pdfTitleSize)
	l.canvas.CellFormat(0, pdfTitleAdvance, l.tr(section.HeadingText()), "", 1, "L", false, 0, "")
	y := l.canvas.GetY()
	l.canvas.SetLineWidth(pdfRuleWidth)
	l.canvas.Line(l.left, y, l.right, y)

	for _, block := range section.Blocks {
		switch section.Mode {
		case layout.ModeEntries:
			l.canvas.SetFont(pdfFontFamily, "B", pdfBodySize)
			l.wrapped(block.Title)
			l.lines(block.Lines)
			l.canvas.Ln(pdfBlockGap)
		case layout.ModeEducation:
			l.educationHeading(block)
			l.lines(block.Lines)
			l.canvas.Ln(pdfBlockGap)
		default:
			l.lines(block.Lines)
		}
	}
	l.canvas.Ln(pdfSectionGap)
}

func (l *pdfLayout) educationHeading(block layout.Block) {
	l.canvas.SetFont(pdfFontFamily, "B", pdfBodySize)
	if block.Date == "" {
		l.canvas.CellFormat(l.width, pdfLineHeight, l.tr(block.Title), "", 1, "L", false, 0, "")
		return
	}
	l.canvas.CellFormat(l.width, pdfLineHeight, l.tr(block.Title), "", 0, "L", false, 0, "")
	l.canvas.SetX(l.left)
	l.canvas.CellFormat(l.width, pdfLineHeight, l.tr(block.Date), "", 1, "R", false, 0, "")
}

func (l *pdfLayout) lines(lines []layout.Line) {
	l.canvas.SetFont(pdfFontFamily, "", pdfBodySize)
	for _, line := range lines {
		text := line.Text
		if line.Bullet {
			text = pdfBulletPrefix + text
		}
		l.wrapped(text)
	}
}

// wrapped draws text over as many lines as the printable width needs.
func (l *pdfLayout) wrapped(text string) {
	for _, part := range l.canvas.SplitLines([]byte(l.tr(text)), l.width) {
		l.canvas.CellFormat(l.width, pdfLineHeight, string(part), "", 1, "L", false, 0, "")
	}
}
