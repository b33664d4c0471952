package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-builder/resume/layout"
	"resume-builder/resume/model"
)

// loadResume reads form state from a .json file or, for any other extension, YAML.
func loadResume(path string) (model.ResumeData, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return model.ResumeData{}, fmt.Errorf("failed to read input file: %w", err)
	}

	var data model.ResumeData
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &data); err != nil {
			return model.ResumeData{}, fmt.Errorf("failed to parse JSON input: %w", err)
		}
		return data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return model.ResumeData{}, fmt.Errorf("failed to parse YAML input: %w", err)
	}
	return data, nil
}

// buildDocument loads the input and the predefined data and returns the layout tree.
func buildDocument(inputPath string) (layout.Document, error) {
	data, err := loadResume(inputPath)
	if err != nil {
		return layout.Document{}, err
	}
	predefined, err := model.LoadPredefined(predefinedPath)
	if err != nil {
		return layout.Document{}, err
	}
	return layout.Build(data, predefined), nil
}
