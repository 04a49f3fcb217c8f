package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/pipeline"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every resume in a directory",
	Long:  "Parse all supported resume files in a directory concurrently, writing one combined JSON result and reporting incremental progress. With --job, every successful parse is also scored against the job and the output carries a ranked list, best match first.",
	RunE:  runBatch,
}

var (
	batchInputDir    string
	batchJobFile     string
	batchOutputFile  string
	batchConcurrency int
)

// batchReport is the JSON emitted by the batch command: the parse results
// plus, when a job was supplied, the ranked matches.
type batchReport struct {
	pipeline.BatchResult
	Ranked []pipeline.RankedMatch `json:"ranked,omitempty"`
}

// supported resume file extensions for directory scans; .json files are
// previously emitted parses and are decoded rather than extracted
var batchExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
	".json": true,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "dir", "d", "", "Directory containing resume files (required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Job description file to rank the parsed resumes against")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Parallel documents (default from config)")
	_ = batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	ctx := context.Background()
	runner, cleanup, err := newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	docs, err := collectDocuments(batchInputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported resume files found in %s", batchInputDir)
	}

	result := runner.ParseBatch(ctx, docs, concurrency, func(p pipeline.Progress) {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s (ok=%d failed=%d)\n",
			p.Processed, p.Total, p.Current, p.Succeeded, p.Failed)
	})

	report := batchReport{BatchResult: result}
	if batchJobFile != "" {
		jobContent, err := os.ReadFile(batchJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		var job types.ParsedJob
		if looksLikeHTML(batchJobFile) {
			job, err = runner.ParseJobHTML(string(jobContent))
			if err != nil {
				return fmt.Errorf("failed to parse job HTML: %w", err)
			}
		} else {
			job = runner.ParseJob(string(jobContent))
		}
		report.Ranked = runner.Rank(ctx, docs, result.Results, job)
	}

	if err := writeOutput(batchOutputFile, report); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Batch %s finished: %d succeeded, %d failed\n",
		result.RunID, result.Success, result.Failed)
	return nil
}

// collectDocuments loads every supported file directly under dir, in
// sorted name order.
func collectDocuments(dir string) ([]types.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !batchExtensions[ext] {
			continue
		}
		doc, err := readDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
