// Package layout turns resume form state into the structured document tree that
// every renderer consumes. Text splitting happens here and nowhere else.
package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Mode selects how a section's blocks are drawn.
type Mode string

const (
	// ModeBullets draws every line with a bullet glyph.
	ModeBullets Mode = "bullets"
	// ModeEntries draws a bold block title followed by bullet lines.
	ModeEntries Mode = "entries"
	// ModeEducation draws institution and date on one line, details below.
	ModeEducation Mode = "education"
	// ModePlain draws lines without glyphs.
	ModePlain Mode = "plain"
)

// Section keys in document order.
const (
	SectionSummary        = "summary"
	SectionSkills         = "technicalSkills"
	SectionWork           = "workExperience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

// ContactSeparator joins contact items on the header line.
const ContactSeparator = " | "

// DefaultName is shown when the name input is empty.
const DefaultName = "Your Name"

// Document is the renderer-neutral resume.
type Document struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// Header holds the name and the contact items that made it through filtering.
type Header struct {
	Name    string        `json:"name"`
	Contact []ContactItem `json:"contact"`
}

// ContactItem is one non-empty personal info value.
type ContactItem struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Section is a labelled region of the output.
type Section struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Mode   Mode    `json:"mode"`
	Blocks []Block `json:"blocks"`
}

// Block is one blank-line-delimited group. Title and Date are only set for
// entry and education sections.
type Block struct {
	Title string `json:"title,omitempty"`
	Date  string `json:"date,omitempty"`
	Lines []Line `json:"lines"`
}

// Line is a single rendered line of text.
type Line struct {
	Text   string `json:"text"`
	Bullet bool   `json:"bullet"`
}

// ContactLine joins the contact items with ContactSeparator.
func (h Header) ContactLine() string {
	parts := make([]string, 0, len(h.Contact))
	for _, item := range h.Contact {
		parts = append(parts, item.Text)
	}
	return strings.Join(parts, ContactSeparator)
}

// HeadingText is the upper-cased title used by every backend.
func (s Section) HeadingText() string {
	return strings.ToUpper(s.Title)
}

// Section returns the section with the given key, if present.
func (d Document) Section(key string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// SectionKeys lists the keys of the rendered sections in order.
func (d Document) SectionKeys() []string {
	keys := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

// Digest identifies the logical content of the document. Two exports of the same
// state share a digest even when their container timestamps differ.
func (d Document) Digest() string {
	payload, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
