package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/async"
)

type LetterUseCase struct {
	repo      interfaces.Repository
	letterSvc *letter.Service
}

func NewLetterUseCase(repo interfaces.Repository, letterSvc *letter.Service) *LetterUseCase {
	return &LetterUseCase{
		repo:      repo,
		letterSvc: letterSvc,
	}
}

// Generate renders a patient letter and records the activity
func (uc *LetterUseCase) Generate(ctx context.Context, templateID string, patient model.PatientData, appointment model.AppointmentDetails, extra map[string]string) (*model.Letter, error) {
	if uc.letterSvc == nil {
		return nil, goerr.Wrap(ErrLettersUnavailable, "cannot generate letter")
	}

	generated, err := uc.letterSvc.Generate(templateID, patient, appointment, extra)
	if err != nil {
		return nil, err
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.repo.Activity().Record(ctx, &model.Activity{
			Type:        model.ActivityLetterGenerated,
			Description: fmt.Sprintf("Letter generated from template %s (%s)", templateID, generated.Reference),
		})
	})

	return generated, nil
}

// Preview renders a letter template with sample data
func (uc *LetterUseCase) Preview(ctx context.Context, templateID, category string) (*model.Letter, error) {
	if uc.letterSvc == nil {
		return nil, goerr.Wrap(ErrLettersUnavailable, "cannot preview letter")
	}
	return uc.letterSvc.Preview(templateID, category)
}

// Templates lists the available letter templates
func (uc *LetterUseCase) Templates(ctx context.Context) ([]model.LetterTemplateInfo, error) {
	if uc.letterSvc == nil {
		return nil, goerr.Wrap(ErrLettersUnavailable, "cannot list letter templates")
	}
	return uc.letterSvc.Templates(), nil
}
