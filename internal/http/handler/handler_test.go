package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/http/handler"
	"github.com/imovelhub/backoffice-api/internal/http/middleware"
	"github.com/imovelhub/backoffice-api/internal/http/router"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"github.com/imovelhub/backoffice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-api-key"

// setupAPI wires the full stack against an in-memory database and returns the
// assembled handler.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	cfg := &config.Config{}
	cfg.App.Name = "backoffice-test"
	cfg.App.Environment = "development"
	cfg.Auth.APIKey = testAPIKey
	cfg.Dashboard.UpcomingVisitDays = 7
	cfg.Dashboard.ExpiringContractDays = 30

	propertyRepo := repository.NewPropertyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	contractRepo := repository.NewContractRepository(db)

	propertyService := service.NewPropertyService(propertyRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	visitService := service.NewVisitService(visitRepo, propertyRepo, clientRepo, log)
	contractService := service.NewContractService(contractRepo, propertyRepo, clientRepo, log)
	dashboardService := service.NewDashboardService(propertyRepo, clientRepo, visitRepo, contractRepo, log)

	rt := router.NewRouter(
		cfg,
		log,
		middleware.NewAuth(&cfg.Auth, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewSystemHandler(cfg, db, log),
		handler.NewPropertyHandler(propertyService, log),
		handler.NewClientHandler(clientService, log),
		handler.NewVisitHandler(visitService, log),
		handler.NewContractHandler(contractService, log),
		handler.NewDashboardHandler(dashboardService, &cfg.Dashboard, log),
	)
	return rt.Setup()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestBannerAndHealthAreOpen(t *testing.T) {
	h := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "backoffice-test", body["name"])

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])

	req = httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresKey(t *testing.T) {
	h := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/properties?api_key="+testAPIKey, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPropertyCRUD(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/properties", map[string]any{
		"title": "Sunny flat",
		"type":  "residential",
		"price": 325000,
		"city":  "Braga",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Regexp(t, `^IMV-[0-9A-F]{6}$`, created["code"])
	id := created["id"].(float64)

	rec = doJSON(t, h, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)
	meta := list["meta"].(map[string]any)
	assert.Equal(t, 1.0, meta["total"])
	assert.Equal(t, 1.0, meta["page"])
	assert.Equal(t, 20.0, meta["per_page"])

	rec = doJSON(t, h, http.MethodPatch, "/api/properties/"+itoa(id), map[string]any{
		"status": "reserved",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "reserved", updated["status"])
	assert.Equal(t, "Sunny flat", updated["title"])

	rec = doJSON(t, h, http.MethodDelete, "/api/properties/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["deleted"])

	// Second delete is a no-op, still 200.
	rec = doJSON(t, h, http.MethodDelete, "/api/properties/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["deleted"])

	rec = doJSON(t, h, http.MethodGet, "/api/properties/"+itoa(id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "property not found", decode(t, rec)["message"])
}

func TestPropertyValidationResponse(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/properties", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "validation_error", body["error"])
	details := body["details"].(map[string]any)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "type")
	assert.Contains(t, details, "price")
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	h := setupAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisitReferenceErrors(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/clients", map[string]any{"name": "Tiago"})
	require.Equal(t, http.StatusCreated, rec.Code)
	clientID := decode(t, rec)["id"].(float64)

	rec = doJSON(t, h, http.MethodPost, "/api/visits", map[string]any{
		"property_id":  999,
		"client_id":    clientID,
		"scheduled_at": "2025-10-01T10:00:00Z",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	details := decode(t, rec)["details"].(map[string]any)
	assert.Equal(t, "referenced property does not exist", details["property_id"])
}

func TestDashboardEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/properties", map[string]any{
		"title": "Metrics house",
		"type":  "residential",
		"price": 100000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	totals := body["totals"].(map[string]any)
	assert.Equal(t, 1.0, totals["properties"])
	assert.Contains(t, body, "properties_by_status")
	assert.Contains(t, body, "clients_by_stage")
	assert.Contains(t, body, "revenue")
}

func itoa(f float64) string {
	return strconv.FormatInt(int64(f), 10)
}
