package router

import (
	"net/http"

	"github.com/ompatel2019/iphone-wallpaper/cliparse"
	"github.com/ompatel2019/iphone-wallpaper/handlers"
	"github.com/ompatel2019/iphone-wallpaper/layout"
	"github.com/ompatel2019/iphone-wallpaper/middleware"
	"github.com/ompatel2019/iphone-wallpaper/render"
)

func NewRouter(renderer render.Renderer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	wallpaper := handlers.NewWallpaperHandler(renderer, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// One route per configured wallpaper variant
	for _, v := range layout.Variants() {
		mux.HandleFunc("GET "+v.Path, middleware.WithLogging(wallpaper.Serve(v)))
	}

	// Variant listing
	mux.HandleFunc("GET /variants", middleware.WithLogging(wallpaper.ListVariants))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("iphone-wallpaper API v1"))
	})

	return mux
}
