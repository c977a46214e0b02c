/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

Routes:

	GET /health              → liveness check
	GET /variants            → JSON listing of wallpaper variants
	GET /wallpaper           → classic dark wallpaper PNG
	GET /wallpaper/minimal   → light minimal wallpaper PNG
	GET /wallpaper/calendar  → month-grid wallpaper PNG
	GET /wallpaper/sydney    → Sydney-pinned wallpaper PNG
	GET /                    → banner

The wallpaper routes are registered by iterating layout.Variants, so
adding a variant value adds its route.
*/
package router
