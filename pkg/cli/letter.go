package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdLetter() *cli.Command {
	var templateID string
	var output string
	var patient model.PatientData
	var appointment model.AppointmentDetails
	var additionalInfo string
	var preview bool
	var previewCategory string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "template",
			Aliases:     []string{"t"},
			Usage:       "Letter template ID (urgent-appointment, routine-appointment, information-request)",
			Required:    true,
			Destination: &templateID,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when omitted)",
			Destination: &output,
		},
		&cli.BoolFlag{
			Name:        "preview",
			Usage:       "Render the template with sample data instead of patient flags",
			Destination: &preview,
		},
		&cli.StringFlag{
			Name:        "preview-category",
			Usage:       "Category for preview rendering (urgent or routine)",
			Destination: &previewCategory,
		},
		&cli.StringFlag{
			Name:        "patient-name",
			Usage:       "Patient full name",
			Destination: &patient.FullName,
		},
		&cli.StringFlag{
			Name:        "patient-title",
			Usage:       "Patient title (Mr, Mrs, Ms, ...)",
			Destination: &patient.Title,
		},
		&cli.StringFlag{
			Name:        "patient-surname",
			Usage:       "Patient surname",
			Destination: &patient.Surname,
		},
		&cli.StringFlag{
			Name:        "patient-address1",
			Usage:       "Patient address line 1",
			Destination: &patient.AddressLine1,
		},
		&cli.StringFlag{
			Name:        "patient-address2",
			Usage:       "Patient address line 2",
			Destination: &patient.AddressLine2,
		},
		&cli.StringFlag{
			Name:        "patient-postcode",
			Usage:       "Patient postcode",
			Destination: &patient.Postcode,
		},
		&cli.StringFlag{
			Name:        "nhs-number",
			Usage:       "Patient NHS number",
			Destination: &patient.NHSNumber,
		},
		&cli.StringFlag{
			Name:        "appointment-date",
			Usage:       "Appointment date",
			Destination: &appointment.Date,
		},
		&cli.StringFlag{
			Name:        "appointment-time",
			Usage:       "Appointment time",
			Destination: &appointment.Time,
		},
		&cli.StringFlag{
			Name:        "appointment-location",
			Usage:       "Appointment location",
			Destination: &appointment.Location,
		},
		&cli.StringFlag{
			Name:        "clinic-name",
			Usage:       "Clinic name",
			Destination: &appointment.ClinicName,
		},
		&cli.StringFlag{
			Name:        "additional-info",
			Usage:       "Requested information list for the information-request template",
			Destination: &additionalInfo,
		},
	}

	return &cli.Command{
		Name:    "letter",
		Aliases: []string{"l"},
		Usage:   "Generate a patient letter from a template",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := letter.New()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize letter service")
			}

			var generated *model.Letter
			if preview {
				generated, err = svc.Preview(templateID, previewCategory)
			} else {
				var extra map[string]string
				if additionalInfo != "" {
					extra = map[string]string{"AdditionalInfoRequired": additionalInfo}
				}
				generated, err = svc.Generate(templateID, patient, appointment, extra)
			}
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(generated.Content)
				return nil
			}

			if err := os.WriteFile(output, []byte(generated.Content), 0600); err != nil {
				return goerr.Wrap(err, "failed to write letter", goerr.V("path", output))
			}
			logging.Default().Info("Letter written",
				"path", output,
				"template", templateID,
				"reference", generated.Reference,
			)
			return nil
		},
	}
}
