package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/assistant"
)

type AssistantUseCase struct {
	repo         interfaces.Repository
	assistantSvc assistant.Service
}

func NewAssistantUseCase(repo interfaces.Repository, svc assistant.Service) *AssistantUseCase {
	return &AssistantUseCase{
		repo:         repo,
		assistantSvc: svc,
	}
}

// AssistantReply is one assistant answer with follow-up suggestions
type AssistantReply struct {
	Answer    string   `json:"answer"`
	Suggested []string `json:"suggested_questions"`
}

// Ask answers a clinician question, grounding the reply on the referenced
// assessment when an ID is given
func (uc *AssistantUseCase) Ask(ctx context.Context, question string, assessmentID types.AssessmentID) (*AssistantReply, error) {
	if uc.assistantSvc == nil {
		return nil, goerr.Wrap(ErrAssistantUnavailable, "cannot answer question")
	}

	var assessment *model.Assessment
	if assessmentID != "" {
		found, err := uc.repo.Assessment().Get(ctx, assessmentID)
		if err != nil {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, assessmentID))
		}
		assessment = found
	}

	answer, err := uc.assistantSvc.Reply(ctx, assistant.Input{
		Question:   question,
		Assessment: assessment,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "assistant reply failed")
	}

	return &AssistantReply{
		Answer:    answer,
		Suggested: assistant.SuggestQuestions(assessment),
	}, nil
}
