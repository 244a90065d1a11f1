package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemCollection is the collection items are stored in.
const ItemCollection = "items"

// TimeLayout is RFC 3339 with fixed millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrNameRequired = errors.New("name is required")

// Item is the stored document. Timestamps are pointers so that documents
// written without them still decode.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description,omitempty"`
	Price       *float64           `bson:"price,omitempty"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty"`
}

type CreateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (r CreateItemRequest) Validate() error {
	if r.Name == nil {
		return ErrNameRequired
	}
	return nil
}

// NewItem builds the document to insert. Both timestamps are set to now.
func (r CreateItemRequest) NewItem(now time.Time) Item {
	return Item{
		Name:        *r.Name,
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
}

// UpdateItemRequest is a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// SetFields returns the $set document for the fields present in r.
// updated_at is always included.
func (r UpdateItemRequest) SetFields(now time.Time) bson.D {
	set := bson.D{}
	if r.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *r.Name})
	}
	if r.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *r.Description})
	}
	if r.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *r.Price})
	}
	return append(set, bson.E{Key: "updated_at", Value: now})
}

// ItemResponse is the only shape of an item returned to clients.
type ItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func NewItemResponse(item Item) ItemResponse {
	id := ""
	if !item.ID.IsZero() {
		id = item.ID.Hex()
	}
	return ItemResponse{
		ID:          id,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedAt:   FormatTime(item.CreatedAt),
		UpdatedAt:   FormatTime(item.UpdatedAt),
	}
}

func NewItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = NewItemResponse(items[i])
	}
	return out
}

// ParseID parses the 24 character hex form of an item id.
func ParseID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// FormatTime renders t in UTC using TimeLayout, or "" when t is nil.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

// Now returns the current time at the precision BSON stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
