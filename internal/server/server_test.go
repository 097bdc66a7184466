package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/internal/pipeline"
	"github.com/sells-group/intel-cli/internal/store"
)

// syncExecutor completes runs immediately so handlers can be tested
// without real fetching.
type syncExecutor struct {
	store store.Store
	fail  bool
	done  chan string
}

func (e *syncExecutor) Execute(ctx context.Context, run *model.Run) (*pipeline.Result, error) {
	defer func() {
		if e.done != nil {
			e.done <- run.ID
		}
	}()

	if e.fail {
		e.store.FailRun(ctx, run.ID, "summarizer: boom")
		return nil, assert.AnError
	}

	profile := &model.Profile{
		Company:      run.Company,
		QualityScore: 42.5,
		Analysis:     model.Analysis{Summary: "test analysis"},
	}
	if err := e.store.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	if err := e.store.UpdateRunStatus(ctx, run.ID, model.RunStatusComplete); err != nil {
		return nil, err
	}
	return &pipeline.Result{RunID: run.ID, Profile: profile}, nil
}

func newTestServer(t *testing.T, fail bool) (*httptest.Server, store.Store, chan string) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "intel.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })

	done := make(chan string, 1)
	srv := New(&syncExecutor{store: st, fail: fail, done: done}, st, 2)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, st, done
}

func waitForRun(t *testing.T, done chan string) string {
	t.Helper()
	select {
	case id := <-done:
		return id
	case <-time.After(5 * time.Second):
		t.Fatal("analysis did not finish")
		return ""
	}
}

func postAnalysis(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/analyses", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestCreateAnalysis_Accepted(t *testing.T) {
	ts, st, done := newTestServer(t, false)

	resp := postAnalysis(t, ts, `{"name":"Acme Corp","url":"https://acme.example"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "pending", body["status"])

	runID := waitForRun(t, done)
	run, err := st.GetRun(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, run.Status)
}

func TestCreateAnalysis_MissingName(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	resp := postAnalysis(t, ts, `{"url":"https://acme.example"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAnalysis_InvalidBody(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	resp := postAnalysis(t, ts, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAnalysis(t *testing.T) {
	ts, _, done := newTestServer(t, false)

	postAnalysis(t, ts, `{"name":"Acme Corp"}`)
	runID := waitForRun(t, done)

	resp, err := http.Get(ts.URL + "/v1/analyses/" + runID)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var run model.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, runID, run.ID)
	assert.Equal(t, "Acme Corp", run.Company.Name)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/v1/analyses/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetReport_Complete(t *testing.T) {
	ts, _, done := newTestServer(t, false)

	postAnalysis(t, ts, `{"name":"Acme Corp","url":"https://acme.example"}`)
	runID := waitForRun(t, done)

	resp, err := http.Get(ts.URL + "/v1/analyses/" + runID + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profile model.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, 42.5, profile.QualityScore)
	assert.Equal(t, "test analysis", profile.Analysis.Summary)
}

func TestGetReport_NotComplete(t *testing.T) {
	ts, _, done := newTestServer(t, true)

	postAnalysis(t, ts, `{"name":"Acme Corp"}`)
	runID := waitForRun(t, done)

	resp, err := http.Get(ts.URL + "/v1/analyses/" + runID + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "failed", body["status"])
}
