package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ompatel2019/iphone-wallpaper/layout"
	"github.com/ompatel2019/iphone-wallpaper/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.NewTestRenderer(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.NewTestRenderer(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "iphone-wallpaper API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestVariantRoutes(t *testing.T) {
	mux := NewRouter(testutil.NewTestRenderer(t), testutil.GetTestConfig())

	for _, v := range layout.Variants() {
		t.Run(v.Path, func(t *testing.T) {
			req := httptest.NewRequest("GET", v.Path+"?width=234&height=506", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			testutil.AssertPNG(t, w, 234, 506)
		})
	}
}

func TestVariantsListingRoute(t *testing.T) {
	mux := NewRouter(testutil.NewTestRenderer(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/variants", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.NewTestRenderer(t), testutil.GetTestConfig())

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},    // Only GET is defined
		{"POST", "/wallpaper"}, // Only GET is defined
		{"DELETE", "/variants"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
