package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/benchmark"
	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/mining"
	"github.com/jonathan/career-coach/internal/quality"
	"github.com/jonathan/career-coach/internal/session"
)

const strongNarrative = "In Q3 2023, I led a team of 12 engineers at Stripe that reduced churn by 25% and saved $2M annually."

func newTestServer(t *testing.T) *Server {
	t.Helper()

	provider, err := config.NewFileProvider("", "")
	require.NoError(t, err)

	store, err := session.NewStore(session.StoreTypeMemory)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	analyzer := quality.NewAnalyzer()
	miner := mining.NewMiner()
	engine := benchmark.NewEngine(provider)

	controller := conversation.NewController(conversation.Deps{
		Store:    store,
		Analyzer: analyzer,
		Miner:    miner,
		Engine:   engine,
		Provider: provider,
	})

	return New(Config{Port: 0}, Deps{
		Controller: controller,
		Analyzer:   analyzer,
		Miner:      miner,
		Engine:     engine,
	})
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestHandleAnalyzeQuality(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/analyze/quality",
		fmt.Sprintf(`{"text": %q}`, strongNarrative))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "good", body["quality_level"])
	assert.Contains(t, body, "overall")
	assert.Contains(t, body, "clarity")
}

func TestHandleAnalyzeQuality_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	// Missing required field.
	w := doRequest(s, http.MethodPost, "/analyze/quality", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, KindValidationError, decodeBody(t, w)["error_kind"])

	// Whitespace-only text passes struct validation but fails analysis.
	w = doRequest(s, http.MethodPost, "/analyze/quality", `{"text": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, KindValidationError, decodeBody(t, w)["error_kind"])

	// Malformed JSON body.
	w = doRequest(s, http.MethodPost, "/analyze/quality", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMineAchievements(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/analyze/achievements",
		fmt.Sprintf(`{"text": %q}`, strongNarrative))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	achievements, ok := body["achievements"].([]any)
	require.True(t, ok)
	assert.Len(t, achievements, 1)
}

func TestHandleBenchmarkPercentile(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet,
		"/benchmarks/percentile?dimension=content_quality&score=0.5&industry=global&role=any&seniority=any", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "content_quality", body["dimension"])
	assert.Contains(t, body, "percentile")
}

func TestHandleBenchmarkPercentile_Errors(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/benchmarks/percentile?score=0.5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(s, http.MethodGet, "/benchmarks/percentile?dimension=content_quality&score=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(s, http.MethodGet,
		"/benchmarks/percentile?dimension=content_quality&score=0.5&industry=none&role=none&seniority=none", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, KindBenchmarkUnavailable, decodeBody(t, w)["error_kind"])
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	// Create
	w := doRequest(s, http.MethodPost, "/sessions",
		`{"target_industry": "global", "target_role": "any", "seniority": "any"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id, ok := created["session_id"].(string)
	require.True(t, ok)
	assert.Equal(t, "introduction", created["phase"])

	// First turn advances out of Introduction.
	w = doRequest(s, http.MethodPost, "/sessions/"+id+"/turns",
		fmt.Sprintf(`{"user_input": %q}`, strongNarrative))
	require.Equal(t, http.StatusOK, w.Code)
	turn := decodeBody(t, w)
	assert.Equal(t, "story_discovery", turn["phase"])
	assert.Equal(t, float64(20), turn["session_progress_percentage"])

	// Snapshot reflects the committed turn.
	w = doRequest(s, http.MethodGet, "/sessions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	snapshot := decodeBody(t, w)
	assert.Equal(t, float64(1), snapshot["turn_count"])
	assert.Equal(t, "story_discovery", snapshot["phase"])

	// Reset
	w = doRequest(s, http.MethodPost, "/sessions/"+id+"/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "introduction", decodeBody(t, w)["phase"])

	// End
	w = doRequest(s, http.MethodDelete, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(s, http.MethodGet, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleProcessTurn_Errors(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/sessions/missing/turns", `{"user_input": "hello there."}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, KindSessionNotFound, decodeBody(t, w)["error_kind"])

	w = doRequest(s, http.MethodPost, "/sessions/missing/turns", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStartSession_Conflict(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/sessions", `{"session_id": "dup"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(s, http.MethodPost, "/sessions", `{"session_id": "dup"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, KindSessionExists, decodeBody(t, w)["error_kind"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodOptions, "/sessions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
