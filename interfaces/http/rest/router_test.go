package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appservices "github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	domainservices "github.com/Switchdoctorstu/Archimate-Ingester/domain/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/archixml"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/config"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/common"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	reg := registry.Default()
	logger := zap.NewNop()
	models := appservices.NewModelService(
		reg,
		appservices.NewStagingService(reg, logger),
		domainservices.NewConsistencyEngine(reg, logger),
		domainservices.NewAutocompleteEngine(reg, logger),
		archixml.New(),
		nil,
		0,
		logger,
	)

	srv := httptest.NewServer(NewRouter(models, cfg, logger).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func openConfig() *config.Config {
	return &config.Config{
		Environment:  "development",
		HistoryLimit: 40,
	}
}

func decodeResponse(t *testing.T, resp *http.Response) common.APIResponse {
	t.Helper()
	defer resp.Body.Close()
	var out common.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRouter_HealthAndReady(t *testing.T) {
	srv := newTestServer(t, openConfig())

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRouter_StagingMergeAndStats(t *testing.T) {
	srv := newTestServer(t, openConfig())

	payload := `{
		"elements": [
			{"type": "BusinessActor", "name": "Customer"},
			{"type": "ApplicationService", "name": "Billing"}
		],
		"relationships": [
			{"type": "ServingRelationship", "source": "Billing", "target": "Customer"}
		]
	}`
	resp, err := http.Post(srv.URL+"/api/v1/staging", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	body := decodeResponse(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	resp, err = http.Get(srv.URL + "/api/v1/model/stats")
	require.NoError(t, err)
	body = decodeResponse(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["elements"])
	assert.Equal(t, float64(1), stats["relationships"])
}

func TestRouter_StagingMerge_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Post(srv.URL+"/api/v1/staging", "application/json", strings.NewReader(`{"elements": [`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Validate(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Post(srv.URL+"/api/v1/model/validate", "application/json", nil)
	require.NoError(t, err)
	body := decodeResponse(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["clean"])
	assert.Contains(t, data["rendered"], "Model Consistency Report")
}

func TestRouter_Lookup_RequiresName(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Get(srv.URL + "/api/v1/model/elements/lookup")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/model/elements/lookup?name=Nobody")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Types(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Get(srv.URL + "/api/v1/model/types")
	require.NoError(t, err)
	body := decodeResponse(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["elements"])
	assert.NotEmpty(t, data["relationships"])
}

func TestRouter_Undo_EmptyHistory(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Post(srv.URL+"/api/v1/model/undo", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_ModelExport(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Get(srv.URL + "/api/v1/model/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
}

func TestRouter_AuthDisabledWithoutSecret(t *testing.T) {
	srv := newTestServer(t, openConfig())

	resp, err := http.Get(srv.URL + "/api/v1/model/stats")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AuthEnforcedWithSecret(t *testing.T) {
	cfg := openConfig()
	cfg.JWTSecret = "test-secret"
	cfg.JWTIssuer = "archimate-ingester"
	srv := newTestServer(t, cfg)

	// No token
	resp, err := http.Get(srv.URL + "/api/v1/model/stats")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong signing key
	badToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "archimate-ingester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/model/stats", nil)
	req.Header.Set("Authorization", "Bearer "+badToken)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "archimate-ingester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/api/v1/model/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Health stays open
	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
