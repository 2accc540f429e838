package recommendations_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/catalog"
	"skincare-backend/internal/recommendations"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := catalog.NewMemoryRepo()
	catalog.SeedDemo(repo)
	svc := recommendations.NewService(repo, time.Second)
	handler := recommendations.NewHandler(svc)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postProfile(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	profile := map[string]any{
		"cleanser": 1, "toner": 1, "serum": 1, "moisturizer": 1, "sunscreen": 1,
		"oily": 1, "dry": 0, "sensitive": 0,
		"acne_fighting": 1, "anti_aging": 0, "brightening": 0, "uv": 0,
	}
	resp := postProfile(t, router, profile)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Recommendations map[string][]catalog.Product `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Recommendations) != 5 {
		t.Fatalf("expected 5 category keys, got %d", len(payload.Recommendations))
	}
	for category, products := range payload.Recommendations {
		if !catalog.IsCategory(category) {
			t.Fatalf("unexpected category key %q", category)
		}
		if len(products) > 3 {
			t.Fatalf("category %q has %d products, want at most 3", category, len(products))
		}
		for _, p := range products {
			if p.Oily != 1 {
				t.Fatalf("product %q not oily-suitable despite oily=1 profile", p.Name)
			}
		}
	}
}

func TestRecommendationsEndpointMissingKeys(t *testing.T) {
	router := newTestRouter(t)

	profile := map[string]any{
		"cleanser": 1, "toner": 1, "serum": 1, "moisturizer": 1, "sunscreen": 1,
		"oily": 1, "dry": 0,
		// sensitive and all functionality flags omitted
	}
	resp := postProfile(t, router, profile)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Missing []string `json:"missing"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "malformed_request" {
		t.Fatalf("expected code malformed_request, got %q", payload.Error.Code)
	}
	if len(payload.Error.Details.Missing) != 5 {
		t.Fatalf("expected 5 missing keys reported, got %v", payload.Error.Details.Missing)
	}
}

func TestRecommendationsEndpointNonObjectBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader([]byte(`"not an object"`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
