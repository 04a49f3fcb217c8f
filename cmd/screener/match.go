package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/observability"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Parse a resume and a job description, then compute the composite fit score with skill, experience, education, and semantic components plus a rationale. The resume may be a document (PDF, DOCX, text) or a previously emitted parse-resume JSON file.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchOutputFile string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description file (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
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

	doc, err := readDocument(matchResumeFile)
	if err != nil {
		return err
	}
	resume := runner.ParseResume(ctx, doc)
	if !resume.Success {
		return fmt.Errorf("resume parse failed: %s", resume.Error)
	}

	jobContent, err := os.ReadFile(matchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	job := runner.ParseJob(string(jobContent))

	result := runner.Match(ctx, resume, job)

	if err := validateOutput(schemas.MatchResultSchema, result); err != nil {
		return err
	}
	if err := writeOutput(matchOutputFile, result); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchSummary(&result)
	}
	return nil
}
