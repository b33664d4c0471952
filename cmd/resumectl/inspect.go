package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the text of an exported PDF or DOCX",
	RunE:  runInspect,
}

var inspectFile string

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Path to resume.pdf or resume.docx (required)")

	_ = inspectCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(filepath.Clean(inspectFile))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	text, err := extract.Text(cmd.Context(), data, "")
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(extract.Lines(text), "\n"))
	return nil
}
