/*
Package main provides the entry point for the iphone-wallpaper server.

iphone-wallpaper renders "year progress" wallpapers as PNG images: a grid
of dots for every day of the year, colored by whether the day is past,
current, or future, with caption text showing days done, days left, and
the percentage of the year completed. Several visual variants share a
single parameterized layout engine.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8090 -z Australia/Sydney

A .env file in the working directory is loaded automatically if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8090)
  - TZ_NAME (-z): Default IANA timezone for day-of-year computation
    (default: server local time)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (wallpaper rendering, variant listing)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON and PNG response helpers
  - models: Response types
  - progress: Calendar progress math (day-of-year, leap years)
  - layout: Grid geometry, cell coloring, month blocks, captions
  - render: PNG rasterization of layout plans
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
