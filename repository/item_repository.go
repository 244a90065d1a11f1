package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"items-service/models"
)

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(models.ItemCollection)}
}

// List returns every item in the collection, in no particular order.
func (r *ItemRepository) List(ctx context.Context) ([]models.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Get(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	var item models.Item
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("find item %s: %w", id.Hex(), err)
	}
	return item, nil
}

// Create inserts item and returns the stored document, read back by the id
// the insert assigned.
func (r *ItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("insert item: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Item{}, fmt.Errorf("insert item: unexpected id type %T", res.InsertedID)
	}
	created, err := r.Get(ctx, id)
	if errors.Is(err, ErrItemNotFound) {
		// not a client error: the insert just succeeded
		return models.Item{}, fmt.Errorf("read created item %s: document missing", id.Hex())
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("read created item: %w", err)
	}
	return created, nil
}

// Update applies set to the item with the given id and returns the updated
// document. Matching, updating and reading back happen in one findAndModify.
func (r *ItemRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.D) (models.Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.Item
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %s: %w", id.Hex(), err)
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}
