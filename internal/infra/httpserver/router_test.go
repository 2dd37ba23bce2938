package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/checkmycar/checkmycar/internal/application/analysis"
	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
)

type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) AnalyzeImage(ctx context.Context, imageBase64 string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func doRequest(t *testing.T, handler http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) domain.Result {
	t.Helper()
	var res domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestAnalyzeSuccess(t *testing.T) {
	client := &fakeClient{reply: `{"code":"BRAKE","title":"브레이크 경고","steps":["a","b","c"]}`}
	handler := NewRouter(appanalysis.NewService(client), "workersai", nil)

	rec := doRequest(t, handler, http.MethodPost, `{"imageBase64":"aGVsbG8="}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	res := decodeResult(t, rec)
	assert.Equal(t, domain.CodeBrake, res.Code)
	assert.Equal(t, domain.SourceAI, res.Source)
	assert.Len(t, res.Steps, domain.StepCount)
}

func TestAnalyzeMissingImage(t *testing.T) {
	client := &fakeClient{}
	handler := NewRouter(appanalysis.NewService(client), "workersai", nil)

	for _, body := range []string{`{}`, `{"imageBase64":""}`, `not json at all`} {
		rec := doRequest(t, handler, http.MethodPost, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.JSONEq(t, `{"error":"imageBase64 required"}`, rec.Body.String())
	}
	assert.Zero(t, client.calls, "upstream must not be called on bad input")
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	client := &fakeClient{}
	handler := NewRouter(appanalysis.NewService(client), "workersai", nil)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doRequest(t, handler, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method: %s", method)
		assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
	}
	assert.Zero(t, client.calls)
}

func TestAnalyzeDemoMode(t *testing.T) {
	// nil client: no provider credentials configured.
	handler := NewRouter(appanalysis.NewService(nil), "workersai", nil)

	rec := doRequest(t, handler, http.MethodPost, `{"imageBase64":"aGVsbG8=","junk":"ignored"}`)

	assert.Equal(t, http.StatusOK, rec.Code, "demo mode is a success, not an error")
	res := decodeResult(t, rec)
	assert.Equal(t, domain.CodeDemo, res.Code)
	assert.Equal(t, domain.SourceDemo, res.Source)
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	handler := NewRouter(appanalysis.NewService(client), "workersai", nil)

	rec := doRequest(t, handler, http.MethodPost, `{"imageBase64":"aGVsbG8="}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "connection refused")
}

func TestHealth(t *testing.T) {
	handler := NewRouter(appanalysis.NewService(nil), "workersai", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["demo_mode"])
}
