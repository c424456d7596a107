package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/async"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// bulkCaseLimit caps one bulk intake request
const bulkCaseLimit = 50

// bulkWorkers bounds concurrent classifier calls during bulk intake
const bulkWorkers = 4

type AssessmentUseCase struct {
	repo         interfaces.Repository
	triageSvc    *triage.Service
	defaultModel string
}

func NewAssessmentUseCase(repo interfaces.Repository, triageSvc *triage.Service, defaultModel string) *AssessmentUseCase {
	if defaultModel == "" {
		defaultModel = "gpt-4o"
	}
	return &AssessmentUseCase{
		repo:         repo,
		triageSvc:    triageSvc,
		defaultModel: defaultModel,
	}
}

// Create runs the full triage pipeline for one referral: indicator scan,
// classifier categorization, rule-based urgency estimate and persistence.
// Classifier failures never fail the intake; the default verdict is stored
// with the failure cause in its rationale.
func (uc *AssessmentUseCase) Create(ctx context.Context, ev *model.CaseEvidence, opts triage.Options) (*model.Assessment, error) {
	if uc.triageSvc == nil {
		return nil, goerr.Wrap(ErrTriageUnavailable, "cannot create assessment")
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if opts.Model == "" {
		opts.Model = uc.defaultModel
	}

	indicators := uc.triageSvc.Indicators(ev)

	var result *model.CategorizationResult
	verdict, err := uc.triageSvc.Categorize(ctx, ev, &indicators, opts)
	if err != nil {
		cause := oracle.UserMessage(err)
		logging.From(ctx).Warn("classifier unavailable, applying default categorization",
			"cause", cause,
			"error", err,
		)
		result = model.DefaultResult(cause)
	} else {
		result = verdict
	}

	urgency := triage.EstimateUrgency(ev)

	assessment := &model.Assessment{
		ID:         types.NewAssessmentID(),
		Evidence:   *ev,
		Indicators: indicators,
		Result:     *result,
		Urgency:    urgency,
		Model:      opts.Model,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := uc.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store assessment")
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.repo.Activity().Record(ctx, &model.Activity{
			Type: model.ActivityAssessmentCompleted,
			Description: fmt.Sprintf("Referral categorized as %s (confidence %.2f)",
				created.Result.Category, float64(created.Result.Confidence)),
		})
	})

	return created, nil
}

// Get retrieves one stored assessment
func (uc *AssessmentUseCase) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "invalid assessment ID", goerr.V(AssessmentIDKey, id))
	}

	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	return assessment, nil
}

// List returns stored assessments, newest first
func (uc *AssessmentUseCase) List(ctx context.Context, opts ...interfaces.ListAssessmentOption) ([]*model.Assessment, error) {
	assessments, err := uc.repo.Assessment().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	return assessments, nil
}

// BulkCreate triages a batch of referrals concurrently. One failed case
// fails the batch; partial persistence is acceptable because replays of the
// same referral simply produce a new assessment.
func (uc *AssessmentUseCase) BulkCreate(ctx context.Context, evidences []*model.CaseEvidence, opts triage.Options) ([]*model.Assessment, error) {
	if len(evidences) == 0 {
		return nil, goerr.Wrap(ErrEmptyBulkRequest, "cannot run bulk intake")
	}
	if len(evidences) > bulkCaseLimit {
		return nil, goerr.Wrap(ErrBulkRequestTooLarge, "cannot run bulk intake",
			goerr.V("count", len(evidences)),
			goerr.V("limit", bulkCaseLimit),
		)
	}

	assessments := make([]*model.Assessment, len(evidences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkWorkers)
	for i, ev := range evidences {
		g.Go(func() error {
			created, err := uc.Create(gctx, ev, opts)
			if err != nil {
				return goerr.Wrap(err, "bulk case failed", goerr.V("index", i))
			}
			assessments[i] = created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assessments, nil
}
