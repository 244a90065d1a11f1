package routes

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"items-service/controllers"
)

// SetupRoutes binds the item and liveness routes. Every request, including
// unmatched paths and CORS preflights, gets a request id and an access log
// line; panics are recovered into a 500.
func SetupRoutes(items *controllers.ItemController, info *controllers.InfoController, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", info.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", info.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/items", items.GetAllItems).Methods(http.MethodGet)
	api.HandleFunc("/items", items.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}", items.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", items.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}", items.DeleteItem).Methods(http.MethodDelete)

	// Any origin, method and request header is accepted.
	permissive := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:       []string{"*"},
		ExposedHeaders:       []string{controllers.RequestIDHeader},
		OptionsSuccessStatus: http.StatusOK,
	})
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger)),
		handlers.PrintRecoveryStack(true),
	)

	var h http.Handler = permissive.Handler(r)
	h = recovery(h)
	h = controllers.AccessLog(logger)(h)
	return controllers.RequestID(h)
}
