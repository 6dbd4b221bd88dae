package pipeline

import (
	"context"
	"log/slog"

	"github.com/ehsandastani/textscan/internal/analyzer"
	"github.com/ehsandastani/textscan/internal/loader"
	"github.com/ehsandastani/textscan/internal/model"
	"github.com/ehsandastani/textscan/internal/normalizer"
)

// LoadStep reads the input file into the report as a RawDocument.
// This is the only step with a failure mode: a missing or unreadable
// input aborts the run before any later stage executes.
type LoadStep struct {
	// loader reads the input file.
	loader *loader.Loader

	// logger for structured logging.
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a new load step.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.loader = loader.New(loader.WithLogger(s.logger))

	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, report *model.TextReport) error {
	doc, err := s.loader.Load(report.Source)
	if err != nil {
		return err
	}

	report.RawLines = doc
	return nil
}

// NormalizeStep transforms the raw lines into their normalized form.
// Each line is processed independently; the step carries no cross-line
// state and cannot fail.
type NormalizeStep struct {
	// normalizer cleans the raw lines.
	normalizer *normalizer.Normalizer

	// logger for structured logging.
	logger *slog.Logger
}

// NormalizeStepOption configures a NormalizeStep.
type NormalizeStepOption func(*NormalizeStep)

// WithNormalizeLogger sets a custom logger for the normalize step.
func WithNormalizeLogger(logger *slog.Logger) NormalizeStepOption {
	return func(s *NormalizeStep) {
		s.logger = logger
	}
}

// NewNormalizeStep creates a new normalize step.
func NewNormalizeStep(opts ...NormalizeStepOption) *NormalizeStep {
	s := &NormalizeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.normalizer = normalizer.New(normalizer.WithLogger(s.logger))

	return s
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do executes the normalize step.
// The raw document is discarded once its normalized form exists; later
// stages only ever see clean lines.
func (s *NormalizeStep) Do(_ context.Context, report *model.TextReport) error {
	report.CleanLines = s.normalizer.Normalize(report.RawLines)
	report.RawLines = nil
	return nil
}

// AnalyzeStep computes the statistics record from the normalized lines.
// This stage carries the aggregation logic: word counting, averaging,
// and distinct-word tracking across the whole document.
type AnalyzeStep struct {
	// analyzer computes the statistics.
	analyzer *analyzer.Analyzer

	// logger for structured logging.
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates a new analyze step.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.analyzer = analyzer.New(analyzer.WithLogger(s.logger))

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do executes the analyze step.
func (s *AnalyzeStep) Do(_ context.Context, report *model.TextReport) error {
	stats := s.analyzer.Analyze(report.CleanLines)
	report.Stats = &stats
	return nil
}

// DefaultPipeline creates a pipeline with the standard analysis steps in
// order: load, normalize, analyze.
//
// Design decision: We provide a default pipeline because the stage order
// is fixed by the data flow (each stage consumes the previous stage's
// output), and constructing it in one place keeps the CLI free of wiring
// boilerplate.
func DefaultPipeline(opts ...Option) *Pipeline {
	p := New(opts...)

	logger := p.logger

	p.AddSteps(
		NewLoadStep(WithLoadLogger(logger)),
		NewNormalizeStep(WithNormalizeLogger(logger)),
		NewAnalyzeStep(WithAnalyzeLogger(logger)),
	)

	return p
}
