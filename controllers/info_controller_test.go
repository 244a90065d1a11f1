package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"items-service/controllers"
)

func TestInfoController(t *testing.T) {
	info := controllers.NewInfoController("1.2.3")

	rr := httptest.NewRecorder()
	info.Root(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":200,"message":"Financial Kanban - Go Service","data":"1.2.3"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	info.Health(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":200,"message":"healthy","data":"ok"}`, rr.Body.String())
}
