package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

// Outline tokens: a section heading is "S:<TITLE>", a bold block title is
// "T", a bullet line is "B" and a plain line is "L". The header is left out.
func expectedOutline(doc layout.Document) []string {
	var out []string
	for _, section := range doc.Sections {
		out = append(out, "S:"+section.HeadingText())
		for _, block := range section.Blocks {
			if block.Title != "" {
				out = append(out, "T")
			}
			for _, line := range block.Lines {
				if line.Bullet {
					out = append(out, "B")
				} else {
					out = append(out, "L")
				}
			}
		}
	}
	return out
}

func previewOutline(t *testing.T, doc layout.Document) []string {
	t.Helper()
	var out []string
	previewDoc(t, doc).Find("section.resume-section").Each(func(_ int, section *goquery.Selection) {
		out = append(out, "S:"+strings.TrimSpace(section.Find(".resume-section-title").Text()))
		section.Find(".resume-entry-title, .resume-institution, .resume-line").Each(func(_ int, el *goquery.Selection) {
			switch {
			case el.HasClass("resume-bullet"):
				out = append(out, "B")
			case el.HasClass("resume-line"):
				out = append(out, "L")
			default:
				out = append(out, "T")
			}
		})
	})
	return out
}

func pdfOutline(doc layout.Document) []string {
	canvas := newRecordingCanvas()
	canvas.charsPerLine = 10000
	drawDocument(canvas, nil, doc)

	var out []string
	for _, cell := range canvas.cells {
		switch {
		case cell.Align == "C" || cell.Align == "R":
			// header lines and education dates
		case cell.Style == "B" && cell.Size == pdfTitleSize:
			out = append(out, "S:"+cell.Text)
		case cell.Style == "B":
			out = append(out, "T")
		case strings.HasPrefix(cell.Text, pdfBulletPrefix):
			out = append(out, "B")
		default:
			out = append(out, "L")
		}
	}
	return out
}

func docxOutline(t *testing.T, doc layout.Document) []string {
	t.Helper()
	data, err := DOCX(doc, DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)
	paragraphs, err := ReadDOCXParagraphs(data)
	require.NoError(t, err)

	var out []string
	for _, p := range paragraphs {
		switch {
		case p.Align == "center":
		case p.Style == "Heading2":
			out = append(out, "S:"+p.Text)
		case p.Bullet:
			out = append(out, "B")
		case p.Bold:
			out = append(out, "T")
		default:
			out = append(out, "L")
		}
	}
	return out
}

func TestBackendsShareOutline(t *testing.T) {
	tests := []struct {
		name       string
		data       model.ResumeData
		predefined model.PredefinedData
		want       []string
	}{
		{
			name:       "full resume",
			data:       sampleData(),
			predefined: samplePredefined(),
			want: []string{
				"S:SUMMARY", "B",
				"S:TECHNICAL SKILLS", "L", "L",
				"S:WORK EXPERIENCE", "T", "B", "B", "T", "B",
				"S:EDUCATION", "T", "L",
				"S:CERTIFICATIONS", "L",
			},
		},
		{
			name: "empty summary is dropped everywhere",
			data: model.ResumeData{SummaryPoints: "\n  \n", Projects: "Compiler\nParsed things"},
			want: []string{"S:PROJECTS", "T", "B"},
		},
		{
			name: "crlf input and malformed block",
			data: model.ResumeData{
				SummaryPoints:  "One\r\nTwo\r\n\r\nThree",
				WorkExperience: "Company A\r\nDid X\r\nCompany B\r\nDid Z",
			},
			want: []string{"S:SUMMARY", "B", "B", "B", "S:WORK EXPERIENCE", "T", "B", "B", "B"},
		},
		{
			name:       "education without date",
			predefined: model.PredefinedData{Education: "Self taught\nOnline courses\n\nMIT | 2020"},
			want:       []string{"S:EDUCATION", "T", "L", "T"},
		},
		{
			name: "nothing but a name",
			data: model.ResumeData{PersonalInfo: model.PersonalInfo{Name: "Ada"}},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := layout.Build(tt.data, tt.predefined)
			require.Equal(t, tt.want, expectedOutline(doc))

			assert.Equal(t, tt.want, previewOutline(t, doc), "preview")
			assert.Equal(t, tt.want, pdfOutline(doc), "pdf")
			assert.Equal(t, tt.want, docxOutline(t, doc), "docx")
		})
	}
}
