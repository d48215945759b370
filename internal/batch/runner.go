package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"markmymedia/internal/discover"
	"markmymedia/internal/history"
	"markmymedia/internal/logging"
	"markmymedia/internal/marking"
	"markmymedia/internal/media"
	"markmymedia/internal/services"
)

// modalityOrder fixes the processing sequence across a run.
var modalityOrder = []media.Modality{media.ModalityPhoto, media.ModalityAudio, media.ModalityVideo}

// Runner executes the batch across modality buckets.
type Runner struct {
	workers           int
	outputDir         string
	preserveStructure bool
	sourceBase        string
	overlayPrefix     string
	markers           map[media.Modality]marking.Marker
	logger            *slog.Logger
	store             *history.Store
	showProgress      bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a logger; a nop logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHistory records per-file results into the given store.
func WithHistory(store *history.Store) Option {
	return func(r *Runner) {
		r.store = store
	}
}

// WithProgress toggles the interactive progress bar.
func WithProgress(enabled bool) Option {
	return func(r *Runner) {
		r.showProgress = enabled
	}
}

// WithSourceBase sets the root used when preserving directory structure.
func WithSourceBase(base string) Option {
	return func(r *Runner) {
		r.sourceBase = base
	}
}

// New constructs a Runner. The markers map binds each modality to the
// routine that processes it; modalities without a marker are skipped.
func New(workers int, outputDir string, preserveStructure bool, overlayPrefix string, markers map[media.Modality]marking.Marker, opts ...Option) *Runner {
	if workers <= 0 {
		workers = 1
	}
	r := &Runner{
		workers:           workers,
		outputDir:         outputDir,
		preserveStructure: preserveStructure,
		overlayPrefix:     overlayPrefix,
		markers:           markers,
		logger:            logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every bucket and returns the collected summary. Unknown
// files are counted but never processed.
func (r *Runner) Run(ctx context.Context, buckets map[media.Modality][]string) (Summary, error) {
	summary := Summary{
		OutputDir:      r.outputDir,
		SkippedUnknown: len(buckets[media.ModalityUnknown]),
	}
	start := time.Now()

	var runID string
	if r.store != nil {
		id, err := r.store.BeginRun(ctx)
		if err != nil {
			return summary, err
		}
		runID = id
	}

	for _, modality := range modalityOrder {
		items := buckets[modality]
		marker := r.markers[modality]
		if len(items) == 0 || marker == nil {
			continue
		}
		stageStart := time.Now()
		results := r.runStage(ctx, modality, marker, items, runID)
		summary.Results = append(summary.Results, results...)
		summary.Timings = append(summary.Timings, StageTiming{
			Modality: modality,
			Files:    len(items),
			Elapsed:  time.Since(stageStart),
		})
	}

	summary.TotalElapsed = time.Since(start)
	if r.store != nil {
		if err := r.store.FinishRun(ctx, runID, len(summary.Results), len(summary.Failures())); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// runStage fans items out to the worker pool and collects results. Workers
// share only read-only state; every pipeline invocation owns its own
// temporary artifacts.
func (r *Runner) runStage(ctx context.Context, modality media.Modality, marker marking.Marker, items []string, runID string) []Result {
	var bar *progressbar.ProgressBar
	if r.showProgress {
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetDescription("Processing "+modality.Label()),
			progressbar.OptionClearOnFinish(),
		)
	}

	jobs := make(chan string)
	resultCh := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input := range jobs {
				resultCh <- r.processOne(ctx, modality, marker, input, runID)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, input := range items {
			select {
			case jobs <- input:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]Result, 0, len(items))
	for result := range resultCh {
		results = append(results, result)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results
}

func (r *Runner) processOne(ctx context.Context, modality media.Modality, marker marking.Marker, input, runID string) Result {
	ctx = services.WithFile(ctx, input)
	ctx = services.WithModality(ctx, string(modality))
	logger := logging.WithContext(ctx, r.logger)

	outputPath := discover.OutputPath(input, r.outputDir, modality, r.preserveStructure, r.sourceBase)
	req := marking.Request{
		InputPath:  input,
		OutputPath: outputPath,
	}
	if r.overlayPrefix != "" {
		req.OverlayText = r.overlayPrefix + filepath.Base(input)
	}

	start := time.Now()
	output, err := marker.Mark(ctx, req)
	result := Result{
		Modality: modality,
		Input:    input,
		Output:   output,
		Err:      err,
		Duration: time.Since(start),
	}
	if err != nil {
		logger.Warn("marking failed", "error", err)
	} else {
		logger.Debug("marking finished", "output", output, "elapsed", result.Duration)
	}

	if r.store != nil {
		entry := history.Entry{
			RunID:    runID,
			Modality: string(modality),
			Input:    input,
			Output:   output,
			OK:       err == nil,
			Duration: result.Duration,
		}
		if err != nil {
			entry.Error = err.Error()
		}
		if recordErr := r.store.Record(ctx, entry); recordErr != nil {
			logger.Warn("history record failed", "error", recordErr)
		}
	}
	return result
}
