package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Progress is an incremental batch status snapshot, emitted after each
// document completes.
type Progress struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Total     int    `json:"total"`
	Current   string `json:"current"` // file name of the document just finished
}

// ProgressCallback receives batch progress updates. It is called from
// worker goroutines under a lock, so it must not call back into the batch.
type ProgressCallback func(Progress)

// BatchResult is the outcome of one batch run. Results are in input order
// regardless of completion order.
type BatchResult struct {
	RunID   string               `json:"run_id"`
	Results []types.ParsedResume `json:"results"`
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
}

// ParseBatch runs ParseResume over many documents concurrently, bounded by
// concurrency. Documents share no mutable state, so runs are independent;
// a document either completes or fails atomically, and one pathological
// document cannot stall the batch beyond its own timeout.
func (r *Runner) ParseBatch(ctx context.Context, docs []types.Document, concurrency int, onProgress ProgressCallback) BatchResult {
	if concurrency < 1 {
		concurrency = 1
	}

	batch := BatchResult{
		RunID:   uuid.NewString(),
		Results: make([]types.ParsedResume, len(docs)),
		Total:   len(docs),
	}

	var mu sync.Mutex
	processed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			result := r.ParseResume(gctx, doc)

			mu.Lock()
			batch.Results[i] = result
			processed++
			if result.Success {
				batch.Success++
			} else {
				batch.Failed++
			}
			if onProgress != nil {
				onProgress(Progress{
					RunID:     batch.RunID,
					Processed: processed,
					Succeeded: batch.Success,
					Failed:    batch.Failed,
					Total:     batch.Total,
					Current:   doc.Name,
				})
			}
			mu.Unlock()
			return nil
		})
	}

	// workers never return errors; parse failures are per-document results
	_ = g.Wait()

	return batch
}

// RankedMatch pairs one batch document with its match result against a job.
type RankedMatch struct {
	FileName string            `json:"file_name"`
	Name     string            `json:"name,omitempty"`
	Result   types.MatchResult `json:"result"`
}

// Rank scores every successfully parsed resume against one job and returns
// the matches sorted best first. Failed parses are skipped; ties keep the
// input order. docs and results are parallel slices from the same batch.
func (r *Runner) Rank(ctx context.Context, docs []types.Document, results []types.ParsedResume, job types.ParsedJob) []RankedMatch {
	ranked := make([]RankedMatch, 0, len(results))
	for i, resume := range results {
		if !resume.Success {
			continue
		}
		fileName := ""
		if i < len(docs) {
			fileName = docs[i].Name
		}
		ranked = append(ranked, RankedMatch{
			FileName: fileName,
			Name:     resume.Name,
			Result:   r.Match(ctx, resume, job),
		})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Result.OverallScore > ranked[b].Result.OverallScore
	})
	return ranked
}
