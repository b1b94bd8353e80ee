package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
)

// storage ids never leave this package
var withoutObjectID = bson.D{{Key: "_id", Value: 0}}

type Orders struct {
	collection *mongo.Collection
}

var _ order.Repository = (*Orders)(nil)

func NewOrders(db *mongo.Database) *Orders {
	return &Orders{collection: db.Collection(OrdersCollection)}
}

func (r *Orders) Create(ctx context.Context, o domain.Order) error {
	doc, err := newOrderDocument(o)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *Orders) Get(ctx context.Context, id string) (domain.Order, error) {
	var doc orderDocument
	opts := options.FindOne().SetProjection(withoutObjectID)
	err := r.collection.FindOne(ctx, bson.M{"id": id}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return doc.toDomain()
}
