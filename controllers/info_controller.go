package controllers

import (
	"net/http"

	"items-service/models"
)

const serviceName = "Financial Kanban - Go Service"

// InfoController serves the liveness endpoints. Neither touches storage.
type InfoController struct {
	version string
}

func NewInfoController(version string) *InfoController {
	return &InfoController{version: version}
}

func (c *InfoController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.ApiResponse[string]{Code: http.StatusOK, Message: serviceName, Data: &c.version})
}

func (c *InfoController) Health(w http.ResponseWriter, r *http.Request) {
	ok := "ok"
	writeJSON(w, models.ApiResponse[string]{Code: http.StatusOK, Message: "healthy", Data: &ok})
}
