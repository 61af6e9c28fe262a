package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	server := mustNewServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"200"`)
	assert.Contains(t, rec.Body.String(), `"message":"OK"`)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"message":"Service is up and running"`)
}
