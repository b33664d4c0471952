package render

// RunStyle captures the inline run formatting of a DOCX element. Size is in half-points.
type RunStyle struct {
	Bold  bool
	Size  int
	Color string
}

// ParagraphSpacing is DOCX paragraph spacing in twips; Line is the line pitch in 240ths.
type ParagraphSpacing struct {
	Before int
	After  int
	Line   int
}

const (
	HeadingColor = "1F2937"
	NameColor    = "111111"
	HeadingSize  = 26
	NameSize     = 32
	ContactSize  = 24
	BodySize     = 22
)

// StyleMap centralizes the run formatting for key resume elements.
var StyleMap = map[string]RunStyle{
	"name": {
		Bold:  true,
		Size:  NameSize,
		Color: NameColor,
	},
	"contact": {
		Size: ContactSize,
	},
	"sectionHeading": {
		Bold:  true,
		Size:  HeadingSize,
		Color: HeadingColor,
	},
	"entryTitle": {
		Bold: true,
	},
	"institution": {
		Bold: true,
	},
}

// SpacingMap centralizes paragraph spacing.
var SpacingMap = map[string]ParagraphSpacing{
	"header":         {After: 200},
	"sectionHeading": {After: 200},
	"normal":         {Before: 200, After: 200, Line: 360},
	"bullet":         {Line: 360},
}

// PDF metrics, in millimetres and points.
const (
	pdfMargin         = 20.0
	pdfNameSize       = 16.0
	pdfNameAdvance    = 8.0
	pdfContactSize    = 10.0
	pdfContactAdvance = 10.0
	pdfTitleSize      = 12.0
	pdfTitleAdvance   = 7.0
	pdfRuleWidth      = 0.5
	pdfBodySize       = 10.0
	pdfLineHeight     = 6.0
	pdfBlockGap       = 2.0
	pdfSectionGap     = 5.0
	pdfBulletPrefix   = "• "
	pdfFontFamily     = "Helvetica"
)
