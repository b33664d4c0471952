package model

import (
	"errors"
	"fmt"
)

// Personal info keys accepted by UpdatePersonalInfo.
const (
	FieldName     = "name"
	FieldLocation = "location"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldLinkedIn = "linkedin"
)

// Free-text keys accepted by UpdateField.
const (
	FieldSummaryPoints   = "summaryPoints"
	FieldTechnicalSkills = "technicalSkills"
	FieldWorkExperience  = "workExperience"
	FieldProjects        = "projects"
)

// ErrUnknownField is returned when a mutation names a key the form does not have.
var ErrUnknownField = errors.New("unknown field")

// ResumeData is the form state. Every field is a plain string and the zero value
// is the all-empty form.
type ResumeData struct {
	PersonalInfo    PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	SummaryPoints   string       `json:"summaryPoints" yaml:"summaryPoints"`
	TechnicalSkills string       `json:"technicalSkills" yaml:"technicalSkills"`
	WorkExperience  string       `json:"workExperience" yaml:"workExperience"`
	Projects        string       `json:"projects" yaml:"projects"`
}

// PersonalInfo captures the header inputs.
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// PersonalInfoFields lists the personal info keys in contact-line order, name first.
func PersonalInfoFields() []string {
	return []string{FieldName, FieldLocation, FieldPhone, FieldEmail, FieldLinkedIn}
}

// TextFields lists the free-text keys in form order.
func TextFields() []string {
	return []string{FieldSummaryPoints, FieldTechnicalSkills, FieldWorkExperience, FieldProjects}
}

// UpdatePersonalInfo sets one personal info value verbatim. Formats are not checked.
func (d *ResumeData) UpdatePersonalInfo(field, value string) error {
	switch field {
	case FieldName:
		d.PersonalInfo.Name = value
	case FieldLocation:
		d.PersonalInfo.Location = value
	case FieldPhone:
		d.PersonalInfo.Phone = value
	case FieldEmail:
		d.PersonalInfo.Email = value
	case FieldLinkedIn:
		d.PersonalInfo.LinkedIn = value
	default:
		return fmt.Errorf("personal info %q: %w", field, ErrUnknownField)
	}
	return nil
}

// UpdateField sets one top-level free-text field verbatim, without trimming.
func (d *ResumeData) UpdateField(field, value string) error {
	switch field {
	case FieldSummaryPoints:
		d.SummaryPoints = value
	case FieldTechnicalSkills:
		d.TechnicalSkills = value
	case FieldWorkExperience:
		d.WorkExperience = value
	case FieldProjects:
		d.Projects = value
	default:
		return fmt.Errorf("field %q: %w", field, ErrUnknownField)
	}
	return nil
}

// PersonalInfoValue returns the value stored under a personal info key.
func (d ResumeData) PersonalInfoValue(field string) (string, error) {
	switch field {
	case FieldName:
		return d.PersonalInfo.Name, nil
	case FieldLocation:
		return d.PersonalInfo.Location, nil
	case FieldPhone:
		return d.PersonalInfo.Phone, nil
	case FieldEmail:
		return d.PersonalInfo.Email, nil
	case FieldLinkedIn:
		return d.PersonalInfo.LinkedIn, nil
	default:
		return "", fmt.Errorf("personal info %q: %w", field, ErrUnknownField)
	}
}

// FieldValue returns the value stored under a free-text key.
func (d ResumeData) FieldValue(field string) (string, error) {
	switch field {
	case FieldSummaryPoints:
		return d.SummaryPoints, nil
	case FieldTechnicalSkills:
		return d.TechnicalSkills, nil
	case FieldWorkExperience:
		return d.WorkExperience, nil
	case FieldProjects:
		return d.Projects, nil
	default:
		return "", fmt.Errorf("field %q: %w", field, ErrUnknownField)
	}
}
