package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/resume/layout"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the resume layout tree as JSON",
	Long:  "Prints the section and block structure every renderer draws from, with its content digest.",
	RunE:  runOutline,
}

var outlineInputFile string

type outlineOutput struct {
	Digest   string          `json:"digest"`
	Sections []string        `json:"sections"`
	Document layout.Document `json:"document"`
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineInputFile, "input", "i", "", "Path to resume YAML or JSON file (required)")

	_ = outlineCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, _ []string) error {
	doc, err := buildDocument(outlineInputFile)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outlineOutput{Digest: doc.Digest(), Sections: doc.SectionKeys(), Document: doc}); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return nil
}
