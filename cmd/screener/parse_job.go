package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/fetch"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/observability"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/schemas"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Segment a job description into structured JSON",
	Long:  "Parse a job-description text or HTML file into the canonical structured JSON: title, company, location, responsibilities, required and preferred skills, and benefits.",
	RunE:  runParseJob,
}

var (
	jobInputFile  string
	jobInputURL   string
	jobOutputFile string
	jobHTML       bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&jobInputFile, "in", "i", "", "Path to job description file")
	parseJobCmd.Flags().StringVar(&jobInputURL, "url", "", "URL to fetch the job posting from")
	parseJobCmd.Flags().StringVarP(&jobOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseJobCmd.Flags().BoolVar(&jobHTML, "html", false, "Treat the input as HTML and strip markup first")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
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

	if (jobInputFile == "") == (jobInputURL == "") {
		return fmt.Errorf("exactly one of --in or --url is required")
	}

	var job types.ParsedJob
	if jobInputURL != "" {
		posting, err := fetch.JobPosting(ctx, jobInputURL, fetch.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		job = runner.ParseJob(posting.Text)
	} else {
		content, err := os.ReadFile(jobInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		if jobHTML || looksLikeHTML(jobInputFile) {
			job, err = runner.ParseJobHTML(string(content))
			if err != nil {
				return fmt.Errorf("failed to parse job HTML: %w", err)
			}
		} else {
			job = runner.ParseJob(string(content))
		}
	}

	if err := validateOutput(schemas.ParsedJobSchema, job); err != nil {
		return err
	}
	if err := writeOutput(jobOutputFile, job); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJobSummary(&job)
	}
	return nil
}

// looksLikeHTML keys off the file extension only; the --html flag forces it.
func looksLikeHTML(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
