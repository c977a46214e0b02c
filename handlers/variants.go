package handlers

import (
	"net/http"

	"github.com/ompatel2019/iphone-wallpaper/layout"
	"github.com/ompatel2019/iphone-wallpaper/middleware"
	"github.com/ompatel2019/iphone-wallpaper/models"
)

// ListVariants handles GET /variants
// Returns the configured wallpaper styles and their routes.
func (h *WallpaperHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	variants := layout.Variants()
	infos := make([]models.VariantInfo, 0, len(variants))

	for _, v := range variants {
		info := models.VariantInfo{
			Name:     v.Name,
			Path:     v.Path,
			Grid:     models.GridFlat,
			Columns:  v.Columns,
			Rows:     v.Rows,
			Timezone: v.Timezone,
		}
		if v.MonthGrid {
			info.Grid = models.GridCalendar
		}
		infos = append(infos, info)
	}

	middleware.JSONResponse(w, http.StatusOK, models.VariantsResponse{Variants: infos})
}
