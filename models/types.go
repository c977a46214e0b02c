package models

// Grid shape constants
const (
	GridFlat     = "flat"
	GridCalendar = "calendar"
)

// Response types

type VariantInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Grid     string `json:"grid"`
	Columns  int    `json:"columns,omitempty"`
	Rows     int    `json:"rows,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

type VariantsResponse struct {
	Variants []VariantInfo `json:"variants"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
