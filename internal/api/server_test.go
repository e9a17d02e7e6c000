package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/metrics"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"github.com/vfg2006/comunica-ads-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type idleJob struct{}

func (idleJob) TriggerManualCheck() bool  { return true }
func (idleJob) GetStatus() map[string]any { return map[string]any{} }

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	cfg := &config.Config{Server: config.Server{Port: "0", AllowedOrigins: []string{"*"}}}
	m := metrics.New()

	srv, err := New(cfg, service, dashboard.NewBoard(service, cfg.Dashboard), idleJob{}, m)
	require.NoError(t, err)

	return srv, m
}

func TestServer_Chain(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestServer_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inexistente", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Rota não encontrada"}`, rec.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthcheck", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)
	assert.JSONEq(t, `{"error": "Método não permitido"}`, rec.Body.String())
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `comunica_ads_http_requests_total{endpoint="/",method="GET",status_code="200"} 1`)
}
