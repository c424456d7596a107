package usecase

import (
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/assistant"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
)

type UseCases struct {
	repo         interfaces.Repository
	triageSvc    *triage.Service
	letterSvc    *letter.Service
	assistantSvc assistant.Service
	oracleClient oracle.Client
	defaultModel string

	Assessment *AssessmentUseCase
	Letter     *LetterUseCase
	Dashboard  *DashboardUseCase
	Models     *ModelUseCase
	Assistant  *AssistantUseCase
}

type Option func(*UseCases)

// WithTriage sets the categorization pipeline service
func WithTriage(svc *triage.Service) Option {
	return func(uc *UseCases) {
		uc.triageSvc = svc
	}
}

// WithLetters sets the letter generation service
func WithLetters(svc *letter.Service) Option {
	return func(uc *UseCases) {
		uc.letterSvc = svc
	}
}

// WithAssistant sets the chat assistant service. Without it the assistant
// endpoint reports that no assistant backend is configured.
func WithAssistant(svc assistant.Service) Option {
	return func(uc *UseCases) {
		uc.assistantSvc = svc
	}
}

// WithOracle sets the classifier client used for model listing
func WithOracle(client oracle.Client) Option {
	return func(uc *UseCases) {
		uc.oracleClient = client
	}
}

// WithDefaultModel sets the classifier model used when a request names none
func WithDefaultModel(model string) Option {
	return func(uc *UseCases) {
		uc.defaultModel = model
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(repo, uc.triageSvc, uc.defaultModel)
	uc.Letter = NewLetterUseCase(repo, uc.letterSvc)
	uc.Dashboard = NewDashboardUseCase(repo)
	uc.Models = NewModelUseCase(uc.oracleClient)
	uc.Assistant = NewAssistantUseCase(repo, uc.assistantSvc)

	return uc
}
