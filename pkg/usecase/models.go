package usecase

import (
	"context"

	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
)

type ModelUseCase struct {
	oracleClient oracle.Client
}

func NewModelUseCase(client oracle.Client) *ModelUseCase {
	return &ModelUseCase{oracleClient: client}
}

// List returns the selectable classifier models. Listing never fails: with
// no client, or a failing provider, the hardcoded defaults are returned so
// the model selector stays usable.
func (uc *ModelUseCase) List(ctx context.Context) []oracle.Model {
	if uc.oracleClient == nil {
		return oracle.DefaultModels()
	}

	models, err := uc.oracleClient.ListModels(ctx)
	if err != nil {
		logging.From(ctx).Warn("model listing failed, using defaults", "error", err)
		return oracle.DefaultModels()
	}
	if len(models) == 0 {
		return oracle.DefaultModels()
	}

	return models
}
