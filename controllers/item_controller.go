package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"items-service/models"
	"items-service/repository"
)

// ItemStore is the storage the item handlers need. Absence must be reported
// as repository.ErrItemNotFound.
type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.D) (models.Item, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ItemController struct {
	store  ItemStore
	logger *zap.Logger
}

func NewItemController(store ItemStore, logger *zap.Logger) *ItemController {
	return &ItemController{store: store, logger: logger}
}

func (c *ItemController) GetAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.store.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeJSON(w, models.Success(models.NewItemResponses(items)))
}

func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	item, err := c.store.Get(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeJSON(w, models.Success(models.NewItemResponse(item)))
}

func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	item, err := c.store.Create(r.Context(), req.NewItem(models.Now()))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeJSON(w, models.Success(models.NewItemResponse(item)))
}

func (c *ItemController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req models.UpdateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := c.store.Update(r.Context(), id, req.SetFields(models.Now()))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	writeJSON(w, models.Success(models.NewItemResponse(item)))
}

func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := c.store.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	writeJSON(w, models.Empty())
}

// fail maps a store error to a bare status code. Details are logged, never
// sent to the client.
func (c *ItemController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrItemNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	c.logger.Error("item store call failed",
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	w.WriteHeader(http.StatusInternalServerError)
}

func parseID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return id, true
}

// decodeBody answers 400 for a body that is not JSON and 422 for JSON whose
// values have the wrong type.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	} else {
		w.WriteHeader(http.StatusBadRequest)
	}
	return false
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
