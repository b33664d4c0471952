package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

type cellCall struct {
	Text  string
	Style string
	Size  float64
	H     float64
	Ln    int
	Align string
	Y     float64
}

// recordingCanvas stands in for gofpdf. It wraps every charsPerLine bytes.
type recordingCanvas struct {
	cells        []cellCall
	rules        [][4]float64
	setX         []float64
	style        string
	size         float64
	y            float64
	charsPerLine int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{y: pdfMargin, charsPerLine: 80}
}

func (c *recordingCanvas) SetFont(_, styleStr string, size float64) {
	c.style = styleStr
	c.size = size
}

func (c *recordingCanvas) CellFormat(_, h float64, txtStr, _ string, ln int, alignStr string, _ bool, _ int, _ string) {
	c.cells = append(c.cells, cellCall{Text: txtStr, Style: c.style, Size: c.size, H: h, Ln: ln, Align: alignStr, Y: c.y})
	if ln == 1 {
		c.y += h
	}
}

func (c *recordingCanvas) Ln(h float64) { c.y += h }
func (c *recordingCanvas) GetY() float64 { return c.y }
func (c *recordingCanvas) SetX(x float64) { c.setX = append(c.setX, x) }
func (c *recordingCanvas) SetLineWidth(float64) {}
func (c *recordingCanvas) GetPageSize() (float64, float64) { return 210, 297 }

func (c *recordingCanvas) Line(x1, y1, x2, y2 float64) {
	c.rules = append(c.rules, [4]float64{x1, y1, x2, y2})
}

func (c *recordingCanvas) GetMargins() (float64, float64, float64, float64) {
	return pdfMargin, pdfMargin, pdfMargin, pdfMargin
}

func (c *recordingCanvas) SplitLines(txt []byte, _ float64) [][]byte {
	var out [][]byte
	for len(txt) > c.charsPerLine {
		out = append(out, txt[:c.charsPerLine])
		txt = txt[c.charsPerLine:]
	}
	return append(out, txt)
}

func (c *recordingCanvas) texts() []string {
	out := make([]string, 0, len(c.cells))
	for _, cell := range c.cells {
		out = append(out, cell.Text)
	}
	return out
}

func (c *recordingCanvas) cell(t *testing.T, text string) cellCall {
	t.Helper()
	for _, cell := range c.cells {
		if cell.Text == text {
			return cell
		}
	}
	t.Fatalf("no cell with text %q in %v", text, c.texts())
	return cellCall{}
}

func TestDrawDocumentHeader(t *testing.T) {
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, sampleDocument())

	name := canvas.cells[0]
	assert.Equal(t, cellCall{Text: "Ada Lovelace", Style: "B", Size: 16, H: 8, Ln: 1, Align: "C", Y: 20}, name)

	contact := canvas.cells[1]
	assert.Equal(t, "London | ada@example.com | linkedin.com/in/ada", contact.Text)
	assert.Equal(t, "C", contact.Align)
	assert.Equal(t, 10.0, contact.Size)
	assert.Equal(t, 28.0, contact.Y)
}

func TestDrawDocumentSectionTitleAndRule(t *testing.T) {
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, sampleDocument())

	title := canvas.cell(t, "SUMMARY")
	assert.Equal(t, "B", title.Style)
	assert.Equal(t, 12.0, title.Size)
	assert.Equal(t, 38.0, title.Y)

	require.NotEmpty(t, canvas.rules)
	assert.Equal(t, [4]float64{20, 45, 190, 45}, canvas.rules[0])
	assert.Len(t, canvas.rules, len(sampleDocument().Sections))
}

func TestDrawDocumentWorkBlocks(t *testing.T) {
	doc := layout.Build(model.ResumeData{WorkExperience: "Company A\nDid X\nDid Y\n\nCompany B\nDid Z"}, model.PredefinedData{})
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, doc)

	assert.Equal(t, []string{
		layout.DefaultName,
		"WORK EXPERIENCE",
		"Company A",
		"• Did X",
		"• Did Y",
		"Company B",
		"• Did Z",
	}, canvas.texts())
	assert.Equal(t, "B", canvas.cell(t, "Company A").Style)
	assert.Equal(t, "", canvas.cell(t, "• Did X").Style)

	// 2mm block gap between the last bullet of A and the title of B.
	assert.Equal(t, canvas.cell(t, "• Did Y").Y+pdfLineHeight+pdfBlockGap, canvas.cell(t, "Company B").Y)
}

func TestDrawDocumentWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200)
	doc := layout.Build(model.ResumeData{SummaryPoints: long + "\nshort"}, model.PredefinedData{})
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, doc)

	first := canvas.cell(t, "• "+long[:76])
	short := canvas.cell(t, "• short")
	assert.Equal(t, first.Y+3*pdfLineHeight, short.Y)
}

func TestDrawDocumentCursorOnlyMovesForward(t *testing.T) {
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, sampleDocument())

	last := 0.0
	for _, cell := range canvas.cells {
		assert.GreaterOrEqual(t, cell.Y, last, cell.Text)
		last = cell.Y
	}
}

func TestDrawDocumentEducationDateRightAligned(t *testing.T) {
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, sampleDocument())

	institution := canvas.cell(t, "Pace University, New York")
	date := canvas.cell(t, "May 2024")
	assert.Equal(t, 0, institution.Ln)
	assert.Equal(t, "L", institution.Align)
	assert.Equal(t, "R", date.Align)
	assert.Equal(t, "B", date.Style)
	assert.Equal(t, institution.Y, date.Y)
	assert.Equal(t, []float64{pdfMargin}, canvas.setX)
	assert.Equal(t, "", canvas.cell(t, "Master of Science").Style)
}

func TestDrawDocumentOmitsEmptySections(t *testing.T) {
	canvas := newRecordingCanvas()
	drawDocument(canvas, nil, layout.Build(model.ResumeData{TechnicalSkills: "Go"}, model.PredefinedData{}))

	assert.Equal(t, []string{layout.DefaultName, "TECHNICAL SKILLS", "Go"}, canvas.texts())
	assert.Len(t, canvas.rules, 1)
}

func TestPDFBytes(t *testing.T) {
	first, err := PDFBytes(sampleDocument(), PDFOptions{CreatedAt: fixedTime})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.Contains(t, string(first), "D:20240102")

	second, err := PDFBytes(sampleDocument(), PDFOptions{CreatedAt: fixedTime})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := renderError(FormatPDF, cause)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, FormatPDF, renderErr.Format)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "render pdf: boom", err.Error())
	assert.NoError(t, renderError(FormatPDF, nil))
}
