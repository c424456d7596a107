package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	domainConfig "github.com/ojhahemant/nhs-triage-app/pkg/domain/model/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Keywords holds the CLI flag for the clinical keyword list file
type Keywords struct {
	path string
}

// Flags returns CLI flags for keyword configuration
func (k *Keywords) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "keyword-config",
			Usage:       "Path to a TOML file overriding the clinical indicator keyword lists",
			Sources:     cli.EnvVars("TRIAGE_KEYWORD_CONFIG"),
			Destination: &k.path,
		},
	}
}

// keywordFile is the TOML shape of a keyword override file
type keywordFile struct {
	Urgent       []string `toml:"urgent"`
	Routine      []string `toml:"routine"`
	NonPriority  []string `toml:"non_priority"`
	VisualUrgent []string `toml:"visual_urgent"`
}

// Configure loads the keyword lists from the configured file. Returns nil
// when no file is given; the triage service then applies the built-in lists.
func (k *Keywords) Configure() (*domainConfig.KeywordConfig, error) {
	if k.path == "" {
		return nil, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(k.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read keyword config file", goerr.V("path", k.path))
	}

	var file keywordFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML keyword config", goerr.V("path", k.path))
	}

	cfg := &domainConfig.KeywordConfig{
		Urgent:       file.Urgent,
		Routine:      file.Routine,
		NonPriority:  file.NonPriority,
		VisualUrgent: file.VisualUrgent,
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "keyword config validation failed", goerr.V("path", k.path))
	}

	return cfg, nil
}
