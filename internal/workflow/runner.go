package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"subweave/internal/config"
	"subweave/internal/logging"
	"subweave/internal/services"
	"subweave/internal/subtitles"
)

// Runner executes operations using one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner builds a Runner. A nil cfg uses config.Default; a nil logger
// discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Runner{cfg: cfg, logger: logging.NewComponentLogger(logger, "workflow")}
}

// WithRun returns ctx tagged with a run ID, generating one when ctx has none.
func WithRun(ctx context.Context) (context.Context, string) {
	if id, ok := services.RunIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return services.WithRunID(ctx, id), id
}

// Run executes ops in order and stops at the first failure. Results of the
// steps completed before a failure are returned alongside the error.
func (r *Runner) Run(ctx context.Context, ops []config.Operation) (Summary, error) {
	ctx, runID := WithRun(ctx)
	summary := Summary{RunID: runID, Results: make([]Result, 0, len(ops))}
	logger := logging.WithContext(ctx, r.logger)
	if len(ops) == 0 {
		logging.WarnWithContext(logger, "no operations configured", "empty_plan",
			logging.String(logging.FieldErrorHint, "add [[operations]] or set the [alignment] track paths"),
			logging.String(logging.FieldImpact, "nothing was written"),
		)
		return summary, nil
	}

	start := time.Now()
	logger.Info("batch started", logging.Int("operations", len(ops)))
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result, err := r.Execute(ctx, op)
		if err != nil {
			logging.ErrorWithContext(logger, "batch step failed", "batch_step_failed",
				logging.Int("step", i+1),
				logging.String(logging.FieldOperation, op.Kind),
				logging.Error(err),
			)
			return summary, fmt.Errorf("operation %d (%s): %w", i+1, op.Kind, err)
		}
		summary.Results = append(summary.Results, result)
	}
	logger.Info("batch completed",
		logging.Int("operations", len(summary.Results)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// Execute dispatches a single configured operation.
func (r *Runner) Execute(ctx context.Context, op config.Operation) (Result, error) {
	switch op.Kind {
	case config.OperationGroup:
		return r.Group(ctx, op.Input, op.Output)
	case config.OperationAlign:
		return r.Align(ctx, op.Input, op.Words, op.Output, op.Format)
	case config.OperationJSON3:
		return r.ConvertJSON3(ctx, op.Input, op.Output)
	default:
		return Result{}, services.Wrap(services.ErrValidation, "workflow", "execute",
			fmt.Sprintf("unknown operation %q", op.Kind), nil)
	}
}

// Group merges consecutive cues of input and writes the grouped SRT to output.
func (r *Runner) Group(ctx context.Context, input, output string) (Result, error) {
	ctx = services.WithOperation(ctx, config.OperationGroup)
	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()

	track, err := subtitles.ReadTrack(input)
	if err != nil {
		return Result{}, err
	}
	opts := r.cfg.GroupOptions()
	grouped, err := subtitles.Group(track, opts)
	if err != nil {
		return Result{}, err
	}
	if err := subtitles.WriteSRT(output, grouped); err != nil {
		return Result{}, err
	}

	result := Result{
		Operation:  config.OperationGroup,
		Input:      input,
		Output:     output,
		InputCues:  len(track),
		OutputCues: len(grouped),
		Elapsed:    time.Since(start),
	}
	logger.Info("cues grouped",
		logging.String("input", input),
		logging.String("output", output),
		logging.Int("lines_per_group", opts.LinesPerGroup),
		logging.Int("min_words", opts.MinWords),
		logging.Int("input_cues", result.InputCues),
		logging.Int("output_cues", result.OutputCues),
	)
	return result, nil
}

// Align maps the word-level track onto the coarse track and writes the
// highlight artifact. An empty format is inferred from the output extension.
func (r *Runner) Align(ctx context.Context, coarsePath, wordsPath, output, format string) (Result, error) {
	ctx = services.WithOperation(ctx, config.OperationAlign)
	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()

	if strings.TrimSpace(format) == "" {
		format = FormatForPath(output)
	}
	format, err := subtitles.ParseFormat(format)
	if err != nil {
		return Result{}, err
	}
	opts, err := r.cfg.AlignOptions(format)
	if err != nil {
		return Result{}, err
	}

	coarse, err := subtitles.ReadTrack(coarsePath)
	if err != nil {
		return Result{}, err
	}
	fine, err := subtitles.ReadTrack(wordsPath)
	if err != nil {
		return Result{}, err
	}
	if !coarse.Sorted() || !fine.Sorted() {
		logging.WarnWithContext(logger, "track is not in start order", "unsorted_track",
			logging.String(logging.FieldErrorHint, "sort cues by start time before aligning"),
			logging.String(logging.FieldImpact, "highlights follow file order"),
		)
	}

	records, stats := subtitles.NewAligner(opts).Align(coarse, fine)
	if err := subtitles.WriteHighlights(output, records, format); err != nil {
		return Result{}, err
	}

	if stats.DroppedFine > 0 {
		logging.WarnWithContext(logger, "word cues outside every caption window", "alignment_dropped_words",
			logging.Int("dropped", stats.DroppedFine),
			logging.String(logging.FieldErrorHint, "check that both tracks share a time base"),
			logging.String(logging.FieldImpact, "those words are never highlighted"),
		)
	}
	if stats.SkippedCoarse > 0 {
		logging.WarnWithContext(logger, "captions without word cues", "alignment_skipped_captions",
			logging.Int("skipped", stats.SkippedCoarse),
			logging.String(logging.FieldImpact, "those captions are absent from the artifact"),
		)
	}
	logger.Info("words aligned",
		logging.String("coarse", coarsePath),
		logging.String("words", wordsPath),
		logging.String("output", output),
		logging.String("format", format),
		logging.Float64("threshold", r.cfg.Alignment.Threshold),
		logging.Bool("positional", r.cfg.Alignment.Positional),
		logging.Int("records", stats.Records),
		logging.Int("matched", stats.Matched),
		logging.Int("fallback", stats.Fallback),
	)

	return Result{
		Operation:  config.OperationAlign,
		Input:      coarsePath,
		Words:      wordsPath,
		Output:     output,
		Format:     format,
		InputCues:  len(coarse),
		OutputCues: len(records),
		Align:      &stats,
		Elapsed:    time.Since(start),
	}, nil
}

// ConvertJSON3 turns a json3 caption payload into a word-level SRT track.
func (r *Runner) ConvertJSON3(ctx context.Context, input, output string) (Result, error) {
	ctx = services.WithOperation(ctx, config.OperationJSON3)
	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()

	track, err := subtitles.ReadJSON3(input)
	if err != nil {
		return Result{}, err
	}
	if err := subtitles.WriteSRT(output, track); err != nil {
		return Result{}, err
	}
	logger.Info("json3 converted",
		logging.String("input", input),
		logging.String("output", output),
		logging.Int("words", len(track)),
	)
	return Result{
		Operation:  config.OperationJSON3,
		Input:      input,
		Output:     output,
		OutputCues: len(track),
		Elapsed:    time.Since(start),
	}, nil
}

// FormatForPath infers an artifact format from a file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return subtitles.FormatYAML
	case ".ass", ".ssa":
		return subtitles.FormatASS
	default:
		return subtitles.FormatJSON
	}
}
