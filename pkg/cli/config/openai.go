package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/urfave/cli/v3"
)

// OpenAI holds CLI flags for the classifier backend
type OpenAI struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key for case categorization",
			Sources:     cli.EnvVars("TRIAGE_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "Default classifier model",
			Value:       "gpt-4o",
			Sources:     cli.EnvVars("TRIAGE_OPENAI_MODEL"),
			Destination: &o.model,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration. The key
// itself is never logged.
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("configured", o.apiKey != ""),
		slog.String("model", o.model),
	}
}

// Model returns the configured default classifier model
func (o *OpenAI) Model() string {
	return o.model
}

// Configure creates the classifier client from the configured flags.
// Returns nil when no API key is set; categorization then falls back to
// the default result.
func (o *OpenAI) Configure() (oracle.Client, error) {
	if o.apiKey == "" {
		return nil, nil
	}

	client, err := oracle.NewOpenAI(o.apiKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	return client, nil
}
