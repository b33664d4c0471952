// Package main provides resumectl, which renders resumes from a file without the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Render and inspect resumes from the command line",
	Long:  "resumectl builds the same PDF and DOCX files as the web form from a YAML or JSON resume file, and reads exported files back as text.",
	// Errors are printed once by main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

var predefinedPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&predefinedPath, "predefined", os.Getenv("PREDEFINED_PATH"), "YAML file overriding the built-in education and certifications")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
