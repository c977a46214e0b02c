/*
Package middleware provides HTTP cross-cutting helpers.

WithLogging wraps handlers with structured request logging (slog) and a
per-request id. JSONResponse and ErrorResponse write the JSON envelope
used by the non-image endpoints; PNGResponse writes image bytes with the
cache headers the wallpaper endpoints require.
*/
package middleware
