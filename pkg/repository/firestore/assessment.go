package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type assessmentDocument struct {
	ID                    string    `firestore:"id"`
	ClinicalDescription   string    `firestore:"clinical_description"`
	PatientAge            *int      `firestore:"patient_age"`
	PriorSymptoms         []string  `firestore:"prior_symptoms"`
	ExtractedDocumentText string    `firestore:"extracted_document_text"`
	ImageDescription      string    `firestore:"image_description"`
	IndicatorsUrgent      []string  `firestore:"indicators_urgent"`
	IndicatorsRoutine     []string  `firestore:"indicators_routine"`
	IndicatorsNonPriority []string  `firestore:"indicators_non_priority"`
	Category              string    `firestore:"category"`
	Confidence            float64   `firestore:"confidence"`
	Rationale             string    `firestore:"rationale"`
	UrgencyScore          int       `firestore:"urgency_score"`
	UrgencyTimeframe      string    `firestore:"urgency_timeframe"`
	UrgencySpecialty      string    `firestore:"urgency_specialty"`
	UrgencyReason         string    `firestore:"urgency_reason"`
	Model                 string    `firestore:"model"`
	CreatedAt             time.Time `firestore:"created_at"`
}

func toAssessmentDocument(a *model.Assessment) *assessmentDocument {
	return &assessmentDocument{
		ID:                    string(a.ID),
		ClinicalDescription:   a.Evidence.ClinicalDescription,
		PatientAge:            a.Evidence.PatientAge,
		PriorSymptoms:         a.Evidence.PriorSymptoms,
		ExtractedDocumentText: a.Evidence.ExtractedDocumentText,
		ImageDescription:      a.Evidence.ImageDescription,
		IndicatorsUrgent:      a.Indicators.Urgent,
		IndicatorsRoutine:     a.Indicators.Routine,
		IndicatorsNonPriority: a.Indicators.NonPriority,
		Category:              string(a.Result.Category),
		Confidence:            float64(a.Result.Confidence),
		Rationale:             a.Result.Rationale,
		UrgencyScore:          a.Urgency.Score,
		UrgencyTimeframe:      a.Urgency.Timeframe,
		UrgencySpecialty:      a.Urgency.Specialty,
		UrgencyReason:         a.Urgency.Reason,
		Model:                 a.Model,
		CreatedAt:             a.CreatedAt,
	}
}

func (d *assessmentDocument) toModel() *model.Assessment {
	return &model.Assessment{
		ID: types.AssessmentID(d.ID),
		Evidence: model.CaseEvidence{
			ClinicalDescription:   d.ClinicalDescription,
			PatientAge:            d.PatientAge,
			PriorSymptoms:         d.PriorSymptoms,
			ExtractedDocumentText: d.ExtractedDocumentText,
			ImageDescription:      d.ImageDescription,
		},
		Indicators: model.IndicatorSet{
			Urgent:      d.IndicatorsUrgent,
			Routine:     d.IndicatorsRoutine,
			NonPriority: d.IndicatorsNonPriority,
		},
		Result: model.CategorizationResult{
			Category:   types.Category(d.Category),
			Confidence: types.Confidence(d.Confidence),
			Rationale:  d.Rationale,
		},
		Urgency: model.UrgencyEstimate{
			Score:     d.UrgencyScore,
			Timeframe: d.UrgencyTimeframe,
			Specialty: d.UrgencySpecialty,
			Reason:    d.UrgencyReason,
		},
		Model:     d.Model,
		CreatedAt: d.CreatedAt,
	}
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	created := *a
	if created.ID == "" {
		created.ID = types.NewAssessmentID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	doc := toAssessmentDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("assessment already exists", goerr.V("id", doc.ID))
		}
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	docRef := r.client.Collection(r.collection()).Doc(string(id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("id", id))
	}

	return assessmentDoc.toModel(), nil
}

func (r *assessmentRepository) List(ctx context.Context, opts ...interfaces.ListAssessmentOption) ([]*model.Assessment, error) {
	var filter interfaces.ListAssessmentFilter
	for _, opt := range opts {
		opt(&filter)
	}

	query := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Desc)
	if filter.Category != nil {
		query = query.Where("category", "==", string(*filter.Category))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var assessments []*model.Assessment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var assessmentDoc assessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment")
		}

		assessments = append(assessments, assessmentDoc.toModel())
	}

	return assessments, nil
}
