package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/observability"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured candidate data from a resume document",
	Long:  "Parse a resume (PDF, DOCX, or plain text) into the canonical structured JSON: contact info, name, sections, skills, experience, and education.",
	RunE:  runParseResume,
}

var (
	resumeInputFile  string
	resumeOutputFile string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	runner, cleanup, err := newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	doc, err := readDocument(resumeInputFile)
	if err != nil {
		return err
	}

	resume := runner.ParseResume(ctx, doc)

	if err := validateOutput(schemas.ParsedResumeSchema, resume); err != nil {
		return err
	}
	if err := writeOutput(resumeOutputFile, resume); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResumeSummary(&resume)
	}
	if !resume.Success {
		return fmt.Errorf("resume parse failed: %s", resume.Error)
	}
	return nil
}
