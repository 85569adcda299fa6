package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/internal/config"
)

func newObdRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewObdHandler()
	r.GET("/obd/search/:query", h.Search)
	r.GET("/obd/:code", h.GetCode)
	return r
}

func TestObdSearchRoute(t *testing.T) {
	r := newObdRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/obd/search/catalyseur", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("search returned status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "P0420") {
		t.Errorf("search for 'catalyseur' missing P0420 in %s", w.Body.String())
	}
}

func TestObdCodeRouteStillResolves(t *testing.T) {
	r := newObdRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/obd/P0420", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code lookup returned status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "catalyseur") {
		t.Errorf("P0420 lookup missing description in %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/obd/P9999", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown code returned status %d, want 404", w.Code)
	}
}

func TestHealthReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.LLM.Model = "qwen2.5-32b-instruct"
	cfg.Vision.BaseURL = "http://localhost:8001"

	r := gin.New()
	h := NewHealthHandler(cfg, func(context.Context) error { return nil }, true)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health returned status %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"status":"healthy"`, `"session_store":"ok"`, `"vision_configured":true`, `"llm_model":"qwen2.5-32b-instruct"`} {
		if !strings.Contains(body, want) {
			t.Errorf("health report missing %s in %s", want, body)
		}
	}
}

func TestHealthReportStoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}

	r := gin.New()
	h := NewHealthHandler(cfg, func(context.Context) error { return errors.New("connection refused") }, false)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	body := w.Body.String()
	if !strings.Contains(body, `"status":"unhealthy"`) {
		t.Errorf("expected unhealthy status in %s", body)
	}
	if !strings.Contains(body, "connection refused") {
		t.Errorf("expected the store error in %s", body)
	}
}
