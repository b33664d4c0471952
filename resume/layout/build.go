package layout

import (
	"strings"

	"resume-builder/resume/model"
)

// Build projects form state and predefined data into a Document. Sections appear
// in a fixed order and a section without content is left out entirely.
func Build(data model.ResumeData, predefined model.PredefinedData) Document {
	doc := Document{Header: buildHeader(data.PersonalInfo)}

	candidates := []Section{
		bulletSection(SectionSummary, "Summary", data.SummaryPoints),
		plainSection(SectionSkills, "Technical Skills", data.TechnicalSkills),
		entrySection(SectionWork, "Work Experience", data.WorkExperience),
		entrySection(SectionProjects, "Projects", data.Projects),
		educationSection(predefined.Education),
		plainSection(SectionCertifications, "Certifications", predefined.Certifications),
	}
	for _, section := range candidates {
		if len(section.Blocks) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

func buildHeader(info model.PersonalInfo) Header {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = DefaultName
	}
	header := Header{Name: name, Contact: []ContactItem{}}
	items := []ContactItem{
		{Kind: model.FieldLocation, Text: info.Location},
		{Kind: model.FieldPhone, Text: info.Phone},
		{Kind: model.FieldEmail, Text: info.Email},
		{Kind: model.FieldLinkedIn, Text: info.LinkedIn},
	}
	for _, item := range items {
		item.Text = strings.TrimSpace(item.Text)
		if item.Text == "" {
			continue
		}
		header.Contact = append(header.Contact, item)
	}
	return header
}

func bulletSection(key, title, text string) Section {
	section := Section{Key: key, Title: title, Mode: ModeBullets}
	if lines := toLines(SplitLines(text), true); len(lines) > 0 {
		section.Blocks = []Block{{Lines: lines}}
	}
	return section
}

func plainSection(key, title, text string) Section {
	section := Section{Key: key, Title: title, Mode: ModePlain}
	if lines := toLines(SplitLines(text), false); len(lines) > 0 {
		section.Blocks = []Block{{Lines: lines}}
	}
	return section
}

func entrySection(key, title, text string) Section {
	section := Section{Key: key, Title: title, Mode: ModeEntries}
	for _, lines := range SplitBlocks(text) {
		section.Blocks = append(section.Blocks, Block{
			Title: lines[0],
			Lines: toLines(lines[1:], true),
		})
	}
	return section
}

func educationSection(text string) Section {
	section := Section{Key: SectionEducation, Title: "Education", Mode: ModeEducation}
	for _, lines := range SplitBlocks(text) {
		institution, date, _ := SplitInstitution(lines[0])
		section.Blocks = append(section.Blocks, Block{
			Title: institution,
			Date:  date,
			Lines: toLines(lines[1:], false),
		})
	}
	return section
}

func toLines(items []string, bullet bool) []Line {
	out := make([]Line, 0, len(items))
	for _, item := range items {
		out = append(out, Line{Text: item, Bullet: bullet})
	}
	return out
}
