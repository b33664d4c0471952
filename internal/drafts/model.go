package drafts

import (
	"time"

	"resume-builder/resume/model"
)

// Draft is one browser session's form state. It lives only in memory.
type Draft struct {
	ID        string
	Data      model.ResumeData
	CreatedAt time.Time
	UpdatedAt time.Time
}
