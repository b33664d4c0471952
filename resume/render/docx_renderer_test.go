package render

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

func readPart(t *testing.T, docxBytes []byte, name string) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	require.NoError(t, err)
	for _, file := range reader.File {
		if normalizeZipName(file.Name) == name {
			content, err := readZipFile(file)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestDOCXPackageParts(t *testing.T) {
	data, err := DOCX(sampleDocument(), DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, file := range reader.File {
		names = append(names, file.Name)
		assert.True(t, file.Modified.Equal(fixedTime), file.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/_rels/document.xml.rels",
		"docProps/core.xml",
	}, names)

	assert.Contains(t, readPart(t, data, "docProps/core.xml"), "2024-01-02T03:04:05Z")
	assert.Contains(t, readPart(t, data, "word/styles.xml"), `w:styleId="Heading2"`)
	assert.Contains(t, readPart(t, data, "word/numbering.xml"), `<w:numFmt w:val="bullet">`)
}

func TestDOCXParagraphStructure(t *testing.T) {
	data, err := DOCX(sampleDocument(), DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	paragraphs, err := ReadDOCXParagraphs(data)
	require.NoError(t, err)

	assert.Equal(t, []DOCXParagraph{
		{Text: "Ada Lovelace", Align: "center", Bold: true},
		{Text: "London | ada@example.com | linkedin.com/in/ada", Align: "center"},
		{Text: "SUMMARY", Style: "Heading2"},
		{Text: "Built engines", Bullet: true},
		{Text: "TECHNICAL SKILLS", Style: "Heading2"},
		{Text: "Go"},
		{Text: "SQL"},
		{Text: "WORK EXPERIENCE", Style: "Heading2"},
		{Text: "Company A", Bold: true},
		{Text: "Did X", Bullet: true},
		{Text: "Did Y", Bullet: true},
		{Text: "Company B", Bold: true},
		{Text: "Did Z", Bullet: true},
		{Text: "EDUCATION", Style: "Heading2"},
		{Text: "Pace University, New York    May 2024", Align: "both", Bold: true},
		{Text: "Master of Science"},
		{Text: "CERTIFICATIONS", Style: "Heading2"},
		{Text: "AWS Certified Solutions Architect - Associate"},
	}, paragraphs)
}

func TestDOCXHeadingBorderAndSpacing(t *testing.T) {
	data, err := DOCX(sampleDocument(), DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	document := readPart(t, data, "word/document.xml")
	assert.Contains(t, document, `<w:bottom w:val="single" w:sz="6" w:space="1" w:color="000000">`)
	assert.Contains(t, document, `<w:numId w:val="1">`)
	assert.Contains(t, document, `<w:spacing w:before="200" w:after="200" w:line="360" w:lineRule="auto">`)
	assert.Contains(t, document, `<w:sz w:val="32">`)
}

func TestDOCXOmitsEmptySections(t *testing.T) {
	doc := layout.Build(model.ResumeData{WorkExperience: "Company A\nDid X"}, model.PredefinedData{})
	data, err := DOCX(doc, DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	paragraphs, err := ReadDOCXParagraphs(data)
	require.NoError(t, err)

	var textsOut []string
	for _, p := range paragraphs {
		textsOut = append(textsOut, p.Text)
	}
	assert.Equal(t, []string{layout.DefaultName, "WORK EXPERIENCE", "Company A", "Did X"}, textsOut)
}

func TestDOCXEscapesText(t *testing.T) {
	doc := layout.Build(model.ResumeData{
		PersonalInfo:  model.PersonalInfo{Name: `R&D <lead> "quoted"`},
		SummaryPoints: "a < b && c > d",
	}, model.PredefinedData{})

	data, err := DOCX(doc, DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	paragraphs, err := ReadDOCXParagraphs(data)
	require.NoError(t, err)
	require.Len(t, paragraphs, 3)
	assert.Equal(t, `R&D <lead> "quoted"`, paragraphs[0].Text)
	assert.Equal(t, "a < b && c > d", paragraphs[2].Text)
}

func TestDOCXIsDeterministic(t *testing.T) {
	first, err := DOCX(sampleDocument(), DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)
	second, err := DOCX(sampleDocument(), DOCXOptions{CreatedAt: fixedTime})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReadDOCXParagraphsRejectsNonZip(t *testing.T) {
	_, err := ReadDOCXParagraphs([]byte("not a zip"))
	assert.Error(t, err)
}
