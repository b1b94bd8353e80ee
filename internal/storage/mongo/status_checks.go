package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/status"
)

type StatusChecks struct {
	collection *mongo.Collection
}

var _ status.Repository = (*StatusChecks)(nil)

func NewStatusChecks(db *mongo.Database) *StatusChecks {
	return &StatusChecks{collection: db.Collection(StatusChecksCollection)}
}

func (r *StatusChecks) Insert(ctx context.Context, c domain.StatusCheck) error {
	doc := statusCheckDocument{ID: c.ID, ClientName: c.ClientName, Timestamp: c.Timestamp}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

// List returns up to limit checks in insertion order.
func (r *StatusChecks) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	opts := options.Find().
		SetProjection(withoutObjectID).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	var docs []statusCheckDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}

	checks := make([]domain.StatusCheck, 0, len(docs))
	for _, d := range docs {
		checks = append(checks, domain.StatusCheck{
			ID:         d.ID,
			ClientName: d.ClientName,
			Timestamp:  d.Timestamp.UTC(),
		})
	}
	return checks, nil
}
