/*
Package handlers contains the HTTP request handlers.

# Handler Types

WallpaperHandler carries the renderer and config dependencies and is
created via a constructor:

	wallpaper := handlers.NewWallpaperHandler(renderer, cfg)

# Wallpaper Rendering

Each configured variant gets its own route, all served by the same
handler parameterized with the variant value:

	GET /wallpaper?width=1170&height=2532 → PNG

Missing or malformed width/height fall back to 1170x2532 (iPhone 14 Pro)
without surfacing an error. The response carries
Cache-Control: public, max-age=0, must-revalidate so clients refetch at
midnight.

# Variant Listing

	GET /variants → JSON list of variant names, routes, and grid shapes

# Timezone Resolution

The variant's pinned timezone wins over the server default (-z/TZ_NAME);
both fall back to server local time.
*/
package handlers
