package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PredefinedData is the fixed education and certification content included in
// every generated document. Callers pass it explicitly to each renderer.
type PredefinedData struct {
	Education      string `json:"education" yaml:"education"`
	Certifications string `json:"certifications" yaml:"certifications"`
}

const defaultEducation = `Pace University, New York | May 2024
Master of Science, Computer Science

SRM University, India | May 2022
Bachelors in Electronics and Communication engineering`

const defaultCertifications = "AWS Certified Solutions Architect - Associate"

// DefaultPredefined returns the built-in education history and certification.
func DefaultPredefined() PredefinedData {
	return PredefinedData{
		Education:      defaultEducation,
		Certifications: defaultCertifications,
	}
}

// LoadPredefined reads a YAML override. An empty path yields DefaultPredefined.
func LoadPredefined(path string) (PredefinedData, error) {
	if path == "" {
		return DefaultPredefined(), nil
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return PredefinedData{}, fmt.Errorf("read predefined data %s: %w", path, err)
	}
	var out PredefinedData
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return PredefinedData{}, fmt.Errorf("parse predefined data %s: %w", path, err)
	}
	return out, nil
}
