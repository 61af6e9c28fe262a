package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"addressbook/contact"
	"addressbook/httpserver"
	"addressbook/result"

	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Info    string          `json:"info"`
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be an API envelope")
	return resp
}

func decodeAPIResult(t *testing.T, raw json.RawMessage, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dest), "failed to decode response result")
}

func mustNewServer(t *testing.T, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	server, err := httpserver.New(options...)
	require.NoError(t, err)
	return server
}

// silentGateway never answers, like a source that hangs.
type silentGateway struct {
	mu    sync.Mutex
	calls int
}

func (g *silentGateway) All(context.Context, func(result.Result[[]contact.Contact])) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
}
