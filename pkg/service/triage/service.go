package triage

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model/config"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
)

// categorization responses are short JSON objects; cap the completion
const maxCategorizationTokens = 300

// DefaultTemperature keeps classification near-deterministic
const DefaultTemperature = 0.2

// Options selects the classifier model and sampling temperature for one
// categorization request
type Options struct {
	Model       string
	Temperature float64
}

// Service runs the categorization pipeline: prompt rendering, one
// classifier invocation and response interpretation. It holds no mutable
// state; concurrent categorizations are independent.
type Service struct {
	client   oracle.Client
	keywords *config.KeywordConfig
}

// New creates a triage service. The client may be nil when no credential is
// configured; Categorize then fails with oracle.ErrNotConfigured and the
// caller substitutes the default result.
func New(client oracle.Client, keywords *config.KeywordConfig) (*Service, error) {
	if keywords == nil {
		keywords = config.DefaultKeywordConfig()
	}
	if err := keywords.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid keyword configuration")
	}

	return &Service{
		client:   client,
		keywords: keywords,
	}, nil
}

// Indicators derives the keyword indicator sets for the given evidence
func (s *Service) Indicators(ev *model.CaseEvidence) model.IndicatorSet {
	return BuildIndicators(ev, s.keywords)
}

// Categorize classifies the evidence with one classifier call. Malformed
// classifier output is always recovered by the text-fallback parser;
// invocation failures surface as oracle taxonomy errors for the caller to
// map onto a default result.
func (s *Service) Categorize(ctx context.Context, ev *model.CaseEvidence, ind *model.IndicatorSet, opts Options) (*model.CategorizationResult, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, goerr.Wrap(oracle.ErrNotConfigured, "cannot categorize")
	}

	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}

	raw, err := s.client.Complete(ctx, oracle.Request{
		Model:        opts.Model,
		Temperature:  temperature,
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildUserPrompt(ev, ind),
		MaxTokens:    maxCategorizationTokens,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "classifier invocation failed")
	}

	result := ParseResponse(raw)

	logging.From(ctx).Info("case categorized",
		"category", result.Category,
		"confidence", result.Confidence,
		"model", opts.Model,
	)

	return result, nil
}
