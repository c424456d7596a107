package assistant

import (
	"strings"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// maxSuggestedQuestions caps the list shown in the UI
const maxSuggestedQuestions = 6

// SuggestQuestions derives follow-up questions a clinician is likely to ask
// about the assessment. The list is deterministic for a given assessment.
func SuggestQuestions(assessment *model.Assessment) []string {
	if assessment == nil {
		return []string{
			"What factors go into triage decisions?",
			"How does the AI categorization work?",
			"What information would help improve the assessment?",
		}
	}

	var questions []string

	switch assessment.Result.Category {
	case types.CategoryUrgent:
		questions = append(questions,
			"Why is this case considered urgent?",
			"What's the recommended timeframe for this referral?",
			"What are the key malignancy indicators I should look for?",
			"How should I communicate urgency to the patient?",
			"What immediate precautions should the patient take?",
			"Which specialist should see this patient first?",
			"What red flag symptoms indicate worsening condition?",
			"How can I fast-track this referral?",
		)
	case types.CategoryRoutine:
		questions = append(questions,
			"What makes this a routine case rather than urgent?",
			"What's the expected waiting time for routine referrals?",
			"What should I tell the patient about timing?",
			"Are there any warning signs to watch for?",
			"What interim management can I provide?",
			"How should I monitor the patient while waiting?",
			"What would escalate this to urgent priority?",
		)
	case types.CategoryNonPriority:
		questions = append(questions,
			"What self-care advice can I give this patient?",
			"What symptoms should the patient watch for?",
			"When should the patient seek further assessment?",
			"Are there any treatments to recommend in the meantime?",
			"How should I communicate the timeline to the patient?",
			"What follow-up arrangements are needed?",
			"Could this become more urgent over time?",
			"What lifestyle advice might help?",
		)
	}

	if assessment.Result.Confidence < 0.7 {
		questions = append(questions,
			"Why is the AI confidence level low?",
			"What additional information might help with classification?",
			"Should I seek a second opinion for this case?",
		)
	}

	for _, symptom := range assessment.Evidence.PriorSymptoms {
		switch {
		case strings.EqualFold(symptom, "Bleeding"):
			questions = append(questions, "Is bleeding always a sign of malignancy?")
		case strings.EqualFold(symptom, "Itching"):
			questions = append(questions, "What does itching suggest about this lesion?")
		case strings.EqualFold(symptom, "Pain"):
			questions = append(questions, "Is pain a significant concern in this context?")
		case strings.EqualFold(symptom, "Color changes"), strings.EqualFold(symptom, "Irregular borders"):
			questions = append(questions, "What appearance changes are most concerning?")
		case strings.EqualFold(symptom, "Fast-growing"):
			questions = append(questions, "How concerning is the rapid growth in this context?")
		}
	}

	questions = append(questions,
		"What should I document in the referral?",
		"What patient education should I provide?",
		"Are there any red flags I should watch for?",
	)

	if len(questions) > maxSuggestedQuestions {
		questions = questions[:maxSuggestedQuestions]
	}
	return questions
}
