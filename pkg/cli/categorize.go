package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ojhahemant/nhs-triage-app/pkg/cli/config"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func categoryPrinter(category types.Category) *color.Color {
	switch category {
	case types.CategoryUrgent:
		return color.New(color.FgRed, color.Bold)
	case types.CategoryRoutine:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func cmdCategorize() *cli.Command {
	var description string
	var patientAge int
	var symptoms []string
	var documentText string
	var imageDescription string
	var modelName string
	var temperature float64
	var openaiCfg config.OpenAI
	var keywordCfg config.Keywords

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "Clinical description of the case (required)",
			Required:    true,
			Destination: &description,
		},
		&cli.IntFlag{
			Name:        "age",
			Usage:       "Patient age in years",
			Destination: &patientAge,
		},
		&cli.StringSliceFlag{
			Name:        "symptom",
			Usage:       "Reported symptom (repeatable)",
			Destination: &symptoms,
		},
		&cli.StringFlag{
			Name:        "document-text",
			Usage:       "Extracted referral document text",
			Destination: &documentText,
		},
		&cli.StringFlag{
			Name:        "image-description",
			Usage:       "Description of an attached lesion image",
			Destination: &imageDescription,
		},
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Classifier model override",
			Destination: &modelName,
		},
		&cli.FloatFlag{
			Name:        "temperature",
			Usage:       "Classifier sampling temperature",
			Destination: &temperature,
		},
	}
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, keywordCfg.Flags()...)

	return &cli.Command{
		Name:    "categorize",
		Aliases: []string{"c"},
		Usage:   "Categorize a single referral and print the verdict",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			oracleClient, err := openaiCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure classifier client")
			}

			keywords, err := keywordCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load keyword configuration")
			}

			svc, err := triage.New(oracleClient, keywords)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize triage service")
			}

			ev := &model.CaseEvidence{
				ClinicalDescription:   description,
				PriorSymptoms:         symptoms,
				ExtractedDocumentText: documentText,
				ImageDescription:      imageDescription,
			}
			if patientAge > 0 {
				ev.PatientAge = &patientAge
			}
			if err := ev.Validate(); err != nil {
				return err
			}

			indicators := svc.Indicators(ev)

			opts := triage.Options{
				Model:       modelName,
				Temperature: temperature,
			}
			if opts.Model == "" {
				opts.Model = openaiCfg.Model()
			}

			result, err := svc.Categorize(ctx, ev, &indicators, opts)
			if err != nil {
				logging.Default().Warn("categorization failed, applying default result", "error", err)
				result = model.DefaultResult(oracle.UserMessage(err))
			}

			urgency := triage.EstimateUrgency(ev)

			categoryPrinter(result.Category).Printf("%s\n", result.Category)
			fmt.Printf("Confidence: %.2f\n", float64(result.Confidence))
			fmt.Printf("Rationale:  %s\n", result.Rationale)
			fmt.Printf("Urgency:    %d/10 (%s)\n", urgency.Score, urgency.Timeframe)
			fmt.Printf("Specialty:  %s\n", urgency.Specialty)

			if !indicators.IsEmpty() {
				fmt.Println("Indicators:")
				for _, ind := range indicators.Urgent {
					color.Red("  [urgent] %s", ind)
				}
				for _, ind := range indicators.Routine {
					color.Yellow("  [routine] %s", ind)
				}
				for _, ind := range indicators.NonPriority {
					color.Green("  [non-priority] %s", ind)
				}
			}

			return nil
		},
	}
}
