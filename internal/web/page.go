// Package web serves the form page and the live preview fragment.
package web

import (
	"embed"
	"html/template"

	"resume-builder/resume/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type personalInput struct {
	Field       string
	Type        string
	Placeholder string
	Value       string
}

type textArea struct {
	Field       string
	Label       string
	Placeholder string
	Tall        bool
	Value       string
}

type pageData struct {
	DraftID        string
	APIBase        string
	PersonalInputs []personalInput
	TextAreas      []textArea
	Preview        template.HTML
}

func newPageData(draftID, apiBase string, data model.ResumeData, preview template.HTML) pageData {
	info := data.PersonalInfo
	return pageData{
		DraftID: draftID,
		APIBase: apiBase,
		PersonalInputs: []personalInput{
			{Field: model.FieldName, Type: "text", Placeholder: "Full Name", Value: info.Name},
			{Field: model.FieldLocation, Type: "text", Placeholder: "Location (e.g., New York, NY)", Value: info.Location},
			{Field: model.FieldPhone, Type: "text", Placeholder: "Phone", Value: info.Phone},
			{Field: model.FieldEmail, Type: "email", Placeholder: "Email", Value: info.Email},
			{Field: model.FieldLinkedIn, Type: "text", Placeholder: "LinkedIn URL", Value: info.LinkedIn},
		},
		TextAreas: []textArea{
			{Field: model.FieldSummaryPoints, Label: "Summary Points", Placeholder: "Enter summary points (one per line)", Value: data.SummaryPoints},
			{Field: model.FieldTechnicalSkills, Label: "Technical Skills", Placeholder: "Enter technical skills", Value: data.TechnicalSkills},
			{Field: model.FieldWorkExperience, Label: "Work Experience", Placeholder: "Enter work experience (separate companies with blank line)", Tall: true, Value: data.WorkExperience},
			{Field: model.FieldProjects, Label: "Projects", Placeholder: "Enter projects (separate projects with blank line)", Tall: true, Value: data.Projects},
		},
		Preview: preview,
	}
}
