package render

import "fmt"

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// RenderError reports a failure inside a document engine.
type RenderError struct {
	Format string
	Cause  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func renderError(format string, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Format: format, Cause: err}
}
