package render

import (
	"time"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

var fixedTime = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

func sampleData() model.ResumeData {
	return model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			Name:     "Ada Lovelace",
			Location: "London",
			Email:    "ada@example.com",
			LinkedIn: "linkedin.com/in/ada",
		},
		SummaryPoints:   "Built engines",
		TechnicalSkills: "Go\nSQL",
		WorkExperience:  "Company A\nDid X\nDid Y\n\nCompany B\nDid Z",
	}
}

func samplePredefined() model.PredefinedData {
	return model.PredefinedData{
		Education:      "Pace University, New York | May 2024\nMaster of Science",
		Certifications: "AWS Certified Solutions Architect - Associate",
	}
}

func sampleDocument() layout.Document {
	return layout.Build(sampleData(), samplePredefined())
}
