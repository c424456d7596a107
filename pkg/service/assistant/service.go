package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

// ErrEmptyQuestion is returned when a reply is requested without a question
var ErrEmptyQuestion = goerr.New("question is required")

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates an assistant service with the provided LLM client
func New(llmClient gollem.LLMClient) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &client{
		llmClient: llmClient,
	}, nil
}

// Reply answers the question with one LLM call, grounding the system
// prompt on the assessment when one is attached
func (c *client) Reply(ctx context.Context, input Input) (string, error) {
	if strings.TrimSpace(input.Question) == "" {
		return "", goerr.Wrap(ErrEmptyQuestion, "cannot reply")
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(BuildSystemPrompt(input.Assessment)),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(input.Question))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate assistant reply")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("empty assistant reply")
	}

	return resp.Texts[0], nil
}

// BuildSystemPrompt creates the assistant instruction block. The assessment
// context is inlined so the assistant can explain the verdict it refers to.
func BuildSystemPrompt(assessment *model.Assessment) string {
	var sb strings.Builder

	sb.WriteString("You are an AI assistant for the Plastic Surgery Triage System.\n")
	sb.WriteString("You help healthcare professionals understand triage results and provide additional information about plastic surgery cases.\n\n")

	if assessment != nil {
		sb.WriteString("You have access to the following triage data:\n")
		if assessment.Evidence.PatientAge != nil {
			fmt.Fprintf(&sb, "- Patient Age: %d\n", *assessment.Evidence.PatientAge)
		}
		symptoms := "None reported"
		if len(assessment.Evidence.PriorSymptoms) > 0 {
			symptoms = strings.Join(assessment.Evidence.PriorSymptoms, ", ")
		}
		fmt.Fprintf(&sb, "- Patient Symptoms: %s\n", symptoms)
		fmt.Fprintf(&sb, "- Urgency Score: %d/10\n", assessment.Urgency.Score)
		fmt.Fprintf(&sb, "- Recommended Timeframe: %s\n", assessment.Urgency.Timeframe)
		fmt.Fprintf(&sb, "- Recommended Specialty: %s\n", assessment.Urgency.Specialty)
		fmt.Fprintf(&sb, "- Recommendation Rationale: %s\n", assessment.Urgency.Reason)
		fmt.Fprintf(&sb, "- Clinical Case Category: %s\n", assessment.Result.Category)
		fmt.Fprintf(&sb, "- Categorization Rationale: %s\n", assessment.Result.Rationale)
		sb.WriteString("\n")
	}

	sb.WriteString("Provide concise, clinically relevant information. Be professional and empathetic.\n")
	sb.WriteString("Do not make specific diagnoses but help with understanding the triage results.\n")
	sb.WriteString("If you don't know something, acknowledge your limitations.")

	return sb.String()
}
