package testutil

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ompatel2019/iphone-wallpaper/cliparse"
	"github.com/ompatel2019/iphone-wallpaper/render"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:     8090,
		Timezone: "UTC",
	}
}

// NewTestRenderer builds the production renderer for tests
func NewTestRenderer(t *testing.T) *render.GG {
	t.Helper()

	renderer, err := render.NewGG()
	if err != nil {
		t.Fatalf("Failed to build renderer: %v", err)
	}
	return renderer
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertPNG decodes the response body as PNG and checks its dimensions
func AssertPNG(t *testing.T, w *httptest.ResponseRecorder, width, height int) image.Image {
	t.Helper()

	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %q", ct)
	}

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to decode PNG response: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		t.Errorf("Expected %dx%d image, got %dx%d", width, height, bounds.Dx(), bounds.Dy())
	}
	return img
}
