package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout/outreach-dashboard/internal/api/handlers"
	"github.com/leadscout/outreach-dashboard/internal/sequencer"
	"github.com/leadscout/outreach-dashboard/internal/service"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	return newTestServerDebug(t, false)
}

func newTestServerDebug(t *testing.T, debug bool) *httptest.Server {
	t.Helper()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	st := store.New(store.WithClock(func() time.Time { return now }))
	v := views.New(st)

	seq := sequencer.New(st, sequencer.WithInterval(time.Millisecond))
	scanner := sequencer.NewScanner(st, sequencer.WithScanDuration(time.Millisecond))

	explorerSvc := service.NewExplorerService(st, v, scanner)
	trackingSvc := service.NewTrackingService(st, v)
	outreachSvc := service.NewOutreachService(st, v, seq)
	templateSvc := service.NewTemplateService(st, v)
	settingsSvc := service.NewSettingsService(st, v)
	dashboardSvc := service.NewDashboardService(v)

	router := NewRouter(
		handlers.NewBusinessHandler(explorerSvc, trackingSvc),
		handlers.NewSendHandler(outreachSvc),
		handlers.NewTemplateHandler(templateSvc),
		handlers.NewSettingsHandler(settingsSvc),
		handlers.NewStatsHandler(dashboardSvc, trackingSvc),
		handlers.NewExportHandler(v),
	)

	srv := httptest.NewServer(router.Setup("", debug))
	t.Cleanup(srv.Close)

	return srv
}

func TestRequestLoggingOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	srv := newTestServerDebug(t, false)
	getJSON(t, srv, "/api/v1/overview", nil)
	assert.NotContains(t, buf.String(), "GET /api/v1/overview")

	buf.Reset()

	srv = newTestServerDebug(t, true)
	getJSON(t, srv, "/api/v1/overview", nil)
	assert.Contains(t, buf.String(), "GET /api/v1/overview")
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func TestListBusinesses(t *testing.T) {
	srv := newTestServer(t)

	var out struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}

	resp := getJSON(t, srv, "/api/v1/businesses", &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, out.Total)

	// Filtered listing
	resp = getJSON(t, srv, "/api/v1/businesses?q=coffee", &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Lone Star Coffee Roasters", out.Data[0]["name"])

	// The query filtered that response only; the stored search filter
	// is untouched and the next plain listing is complete again
	resp = getJSON(t, srv, "/api/v1/businesses", &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, out.Total)
}

func TestGetBusinessNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := getJSON(t, srv, "/api/v1/businesses/biz-999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdvanceBusiness(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/businesses/biz-001/advance", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var biz map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&biz))
	assert.Equal(t, "email_sent", biz["status"])
}

func TestUpdateStatusRejectsBogusValue(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPatch, "/api/v1/businesses/biz-001/status", map[string]string{"status": "bogus"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendWorkflow(t *testing.T) {
	srv := newTestServer(t)

	// Confirm with nothing pending
	resp := doJSON(t, srv, http.MethodPost, "/api/v1/send/confirm", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Open the dialog, then confirm
	resp = doJSON(t, srv, http.MethodPost, "/api/v1/businesses/biz-001/send", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/v1/send/confirm", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// Progress eventually settles back to idle with the business sent
	require.Eventually(t, func() bool {
		var progress struct {
			Sending  bool `json:"sending"`
			Progress int  `json:"progress"`
		}
		getJSON(t, srv, "/api/v1/send/progress", &progress)

		return !progress.Sending && progress.Progress == 0
	}, time.Second, 5*time.Millisecond)

	var biz map[string]any
	getJSON(t, srv, "/api/v1/businesses/biz-001", &biz)
	assert.Equal(t, "email_sent", biz["status"])
}

func TestTemplatePreview(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/businesses/biz-001/select", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Preview string `json:"preview"`
		Format  string `json:"format"`
	}

	getJSON(t, srv, "/api/v1/templates/preview", &out)
	assert.Equal(t, "html", out.Format)
	assert.Contains(t, out.Preview, "Lone Star Coffee Roasters")
	assert.NotContains(t, out.Preview, "{{business_name}}")

	getJSON(t, srv, "/api/v1/templates/preview?format=text", &out)
	assert.Equal(t, "text", out.Format)
	assert.NotContains(t, out.Preview, "<br/>")
}

func TestTemplateActivateUnknownVariant(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/v1/templates/variant-zz/activate", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScoreboardAndOverview(t *testing.T) {
	srv := newTestServer(t)

	var board struct {
		Sent     int `json:"sent"`
		OpenRate int `json:"open_rate"`
	}
	getJSON(t, srv, "/api/v1/scoreboard", &board)
	assert.Equal(t, 7, board.Sent)
	assert.Equal(t, 57, board.OpenRate)

	var overview struct {
		Stats struct {
			TotalAnalyzed int `json:"total_analyzed"`
		} `json:"stats"`
		Trend []any `json:"trend"`
	}
	getJSON(t, srv, "/api/v1/overview", &overview)
	assert.Equal(t, 12, overview.Stats.TotalAnalyzed)
	assert.NotEmpty(t, overview.Trend)
}

func TestEventFeedLimit(t *testing.T) {
	srv := newTestServer(t)

	var out struct {
		Data []any `json:"data"`
	}

	getJSON(t, srv, "/api/v1/events?limit=3", &out)
	assert.Len(t, out.Data, 3)

	resp := getJSON(t, srv, "/api/v1/events?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPatch, "/api/v1/settings/email", map[string]int{"daily_limit": 10})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings struct {
		Email struct {
			DailyLimit int `json:"daily_limit"`
		} `json:"email"`
	}
	getJSON(t, srv, "/api/v1/settings", &settings)
	assert.Equal(t, 10, settings.Email.DailyLimit)
}

func TestErrorBanner(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPut, "/api/v1/error", map[string]string{"message": "quota exceeded"})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Present bool   `json:"present"`
	}
	getJSON(t, srv, "/api/v1/error", &out)
	assert.True(t, out.Present)
	assert.Equal(t, "quota exceeded", out.Message)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/error", nil)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getJSON(t, srv, "/api/v1/error", &out)
	assert.False(t, out.Present)
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/export?format=csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	respBad, err := http.Get(srv.URL + "/api/v1/export?format=bogus")
	require.NoError(t, err)
	respBad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, respBad.StatusCode)
}
