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

func previewDoc(t *testing.T, doc layout.Document) *goquery.Document {
	t.Helper()
	html, err := Preview(doc)
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	require.NoError(t, err)
	return parsed
}

func texts(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func TestPreviewHeader(t *testing.T) {
	page := previewDoc(t, sampleDocument())

	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(page.Find("h1.resume-name").Text()))
	assert.Equal(t, "London | ada@example.com | linkedin.com/in/ada", strings.TrimSpace(page.Find(".resume-contact").Text()))

	link := page.Find(".resume-contact a")
	require.Equal(t, 1, link.Length())
	href, ok := link.Attr("href")
	require.True(t, ok)
	assert.Equal(t, "https://linkedin.com/in/ada", href)
}

func TestPreviewDefaultNameAndNoContact(t *testing.T) {
	page := previewDoc(t, layout.Build(model.ResumeData{}, model.PredefinedData{}))

	assert.Equal(t, layout.DefaultName, strings.TrimSpace(page.Find("h1.resume-name").Text()))
	assert.Equal(t, 0, page.Find(".resume-contact").Length())
	assert.Equal(t, 0, page.Find("section").Length())
}

func TestPreviewWorkBlocks(t *testing.T) {
	page := previewDoc(t, sampleDocument())

	blocks := page.Find(`section[data-section="workExperience"] .resume-block`)
	require.Equal(t, 2, blocks.Length())

	first := blocks.Eq(0)
	assert.Equal(t, "Company A", strings.TrimSpace(first.Find(".resume-entry-title strong").Text()))
	assert.Equal(t, []string{"● Did X", "● Did Y"}, texts(first.Find(".resume-bullet")))

	second := blocks.Eq(1)
	assert.Equal(t, "Company B", strings.TrimSpace(second.Find(".resume-entry-title").Text()))
	assert.Equal(t, []string{"● Did Z"}, texts(second.Find(".resume-bullet")))
}

func TestPreviewSkillsHaveNoGlyph(t *testing.T) {
	page := previewDoc(t, sampleDocument())

	skills := page.Find(`section[data-section="technicalSkills"]`)
	assert.Equal(t, []string{"Go", "SQL"}, texts(skills.Find(".resume-line")))
	assert.Equal(t, 0, skills.Find(".resume-bullet").Length())
}

func TestPreviewEducationHeading(t *testing.T) {
	page := previewDoc(t, sampleDocument())

	education := page.Find(`section[data-section="education"]`)
	assert.Equal(t, "Pace University, New York", strings.TrimSpace(education.Find(".resume-institution").Text()))
	assert.Equal(t, "May 2024", strings.TrimSpace(education.Find(".resume-date").Text()))
	assert.Equal(t, []string{"Master of Science"}, texts(education.Find(".resume-line")))
}

func TestPreviewOmitsEmptySummary(t *testing.T) {
	data := sampleData()
	data.SummaryPoints = "\n  \n"

	page := previewDoc(t, layout.Build(data, samplePredefined()))

	assert.Equal(t, 0, page.Find(`section[data-section="summary"]`).Length())
	assert.NotContains(t, texts(page.Find("h2")), "SUMMARY")
}

func TestPreviewEscapesUserText(t *testing.T) {
	data := model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			Name:     "<script>alert(1)</script>",
			LinkedIn: "javascript:alert(1)",
		},
	}

	page := previewDoc(t, layout.Build(data, model.PredefinedData{}))

	assert.Equal(t, 0, page.Find("script").Length())
	assert.Equal(t, "<script>alert(1)</script>", strings.TrimSpace(page.Find("h1").Text()))
	href, _ := page.Find(".resume-contact a").Attr("href")
	assert.NotContains(t, href, "javascript")
}

func TestLinkHref(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/ada", linkHref("linkedin.com/in/ada"))
	assert.Equal(t, "https://linkedin.com/in/ada", linkHref(" https://linkedin.com/in/ada "))
	assert.Equal(t, "http://example.com", linkHref("http://example.com"))
}
