package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"google.golang.org/api/iterator"
)

type activityDocument struct {
	ID          string    `firestore:"id"`
	Type        string    `firestore:"type"`
	Description string    `firestore:"description"`
	Actor       string    `firestore:"actor"`
	OccurredAt  time.Time `firestore:"occurred_at"`
}

type activityRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newActivityRepository(client *firestore.Client) *activityRepository {
	return &activityRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *activityRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_activities"
	}
	return "activities"
}

func (r *activityRepository) Record(ctx context.Context, a *model.Activity) error {
	doc := &activityDocument{
		ID:          a.ID,
		Type:        string(a.Type),
		Description: a.Description,
		Actor:       a.Actor,
		OccurredAt:  a.OccurredAt,
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.OccurredAt.IsZero() {
		doc.OccurredAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to record activity", goerr.V("id", doc.ID))
	}

	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	query := r.client.Collection(r.collection()).OrderBy("occurred_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var activities []*model.Activity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate activities")
		}

		var activityDoc activityDocument
		if err := doc.DataTo(&activityDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal activity")
		}

		activities = append(activities, &model.Activity{
			ID:          activityDoc.ID,
			Type:        model.ActivityType(activityDoc.Type),
			Description: activityDoc.Description,
			Actor:       activityDoc.Actor,
			OccurredAt:  activityDoc.OccurredAt,
		})
	}

	return activities, nil
}
