package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ompatel2019/iphone-wallpaper/cliparse"
	"github.com/ompatel2019/iphone-wallpaper/layout"
	"github.com/ompatel2019/iphone-wallpaper/middleware"
	"github.com/ompatel2019/iphone-wallpaper/progress"
	"github.com/ompatel2019/iphone-wallpaper/render"
)

// Default canvas size: iPhone 14 Pro wallpaper resolution
const (
	DefaultWidth  = 1170
	DefaultHeight = 2532
)

type WallpaperHandler struct {
	renderer render.Renderer
	cfg      cliparse.Config
	now      func() time.Time
}

func NewWallpaperHandler(renderer render.Renderer, cfg cliparse.Config) *WallpaperHandler {
	return &WallpaperHandler{
		renderer: renderer,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Serve returns the handler for one variant: GET <path>?width=&height=
// Missing or malformed size parameters fall back to the defaults silently.
func (h *WallpaperHandler) Serve(v layout.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width := queryDimension(r, "width", DefaultWidth)
		height := queryDimension(r, "height", DefaultHeight)

		prog := progress.Compute(h.now(), h.location(v))
		plan := layout.Build(width, height, prog, v)

		img, err := h.renderer.Render(plan)
		if err != nil {
			slog.Error("failed to render wallpaper", "variant", v.Name, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Render failed")
			return
		}

		middleware.PNGResponse(w, img)
	}
}

// location resolves the timezone for a variant: the variant's pinned zone
// wins, then the configured default, then server local time. A zone that
// fails to load falls back rather than failing the request.
func (h *WallpaperHandler) location(v layout.Variant) *time.Location {
	name := v.Timezone
	if name == "" {
		name = h.cfg.Timezone
	}
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("failed to load timezone, using local", "zone", name, "error", err)
		return time.Local
	}
	return loc
}

// queryDimension reads a positive integer query parameter, falling back
// to def on anything missing or malformed.
func queryDimension(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
