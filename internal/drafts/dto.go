package drafts

import (
	"time"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

// DraftResponse is the outward-facing representation of a draft.
type DraftResponse struct {
	DraftID   string           `json:"draftId"`
	Data      model.ResumeData `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// OutlineResponse exposes the layout tree every renderer draws from.
type OutlineResponse struct {
	DraftID  string          `json:"draftId"`
	Digest   string          `json:"digest"`
	Sections []string        `json:"sections"`
	Document layout.Document `json:"document"`
}

type personalInfoRequest struct {
	Field string `json:"field" binding:"required,oneof=name location phone email linkedin"`
	Value string `json:"value"`
}

type fieldRequest struct {
	Field string `json:"field" binding:"required,oneof=summaryPoints technicalSkills workExperience projects"`
	Value string `json:"value"`
}

func toResponse(d Draft) DraftResponse {
	return DraftResponse{
		DraftID:   d.ID,
		Data:      d.Data,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toOutline(d Draft, doc layout.Document) OutlineResponse {
	return OutlineResponse{
		DraftID:  d.ID,
		Digest:   doc.Digest(),
		Sections: doc.SectionKeys(),
		Document: doc,
	}
}
