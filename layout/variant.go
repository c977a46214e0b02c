package layout

// ColorToken classifies a day cell relative to today.
type ColorToken int

const (
	TokenPast ColorToken = iota
	TokenCurrent
	TokenFuture
)

// Anchor selects how the grid is placed vertically inside the drawable
// region between the top padding and the caption band.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorCenter
	AnchorBottom
)

// FontStyle selects which embedded face the renderer uses for a caption.
type FontStyle int

const (
	StyleRegular FontStyle = iota
	StyleBold
	StyleItalic
)

// CaptionKind selects which caption template a variant uses.
type CaptionKind int

const (
	// CaptionStats is a single centered line: "100d done · 266d left · 27%"
	CaptionStats CaptionKind = iota
	// CaptionPercent is a large percentage with the variant tagline below it
	CaptionPercent
	// CaptionOrdinal is "100th day of 2024" with a stats line below it
	CaptionOrdinal
)

// Palette maps color tokens and text roles to hex colors.
type Palette struct {
	Background string
	Past       string
	Current    string
	Future     string
	Text       string
	Muted      string
	Accent     string
}

// Hex resolves a color token against the palette.
func (p Palette) Hex(t ColorToken) string {
	switch t {
	case TokenPast:
		return p.Past
	case TokenCurrent:
		return p.Current
	default:
		return p.Future
	}
}

// Variant is the full parameterization of one wallpaper style. Every
// endpoint is a Variant value; there is exactly one layout code path.
type Variant struct {
	Name string
	Path string

	// Grid shape. Columns and Rows describe the flat day grid; extra days
	// beyond Columns*Rows spill into one partial row. MonthGrid switches to
	// the 12-block calendar arrangement instead.
	Columns   int
	Rows      int
	MonthGrid bool

	// Geometry constants. Scale trades whitespace against cell size,
	// DotFrac sizes the dot relative to the tighter spacing axis.
	Scale      float64
	DotFrac    float64
	TopFrac    float64
	BottomFrac float64
	SideFrac   float64
	Anchor     Anchor

	// Timezone pins the calendar day to a named zone. Empty means the
	// server default applies.
	Timezone string

	Caption CaptionKind
	Tagline string
	Palette Palette
}

// Variants returns the configured wallpaper variants in route order.
func Variants() []Variant {
	dark := Palette{
		Background: "#0B0F14",
		Past:       "#FFFFFF",
		Current:    "#F97316",
		Future:     "#2D3748",
		Text:       "#E6EDF3",
		Muted:      "#9CA3B0",
		Accent:     "#F97316",
	}

	light := Palette{
		Background: "#FAFAFA",
		Past:       "#111111",
		Current:    "#2563EB",
		Future:     "#D4D4D8",
		Text:       "#111111",
		Muted:      "#6B7280",
		Accent:     "#2563EB",
	}

	return []Variant{
		{
			Name:       "classic",
			Path:       "/wallpaper",
			Columns:    15,
			Rows:       24,
			Scale:      0.82,
			DotFrac:    0.42,
			TopFrac:    0.16,
			BottomFrac: 0.14,
			SideFrac:   0.08,
			Anchor:     AnchorCenter,
			Caption:    CaptionStats,
			Palette:    dark,
		},
		{
			Name:       "minimal",
			Path:       "/wallpaper/minimal",
			Columns:    15,
			Rows:       24,
			Scale:      0.70,
			DotFrac:    0.35,
			TopFrac:    0.20,
			BottomFrac: 0.18,
			SideFrac:   0.10,
			Anchor:     AnchorBottom,
			Caption:    CaptionPercent,
			Tagline:    "keep pushing",
			Palette:    light,
		},
		{
			Name:       "calendar",
			Path:       "/wallpaper/calendar",
			MonthGrid:  true,
			Scale:      0.88,
			DotFrac:    0.55,
			TopFrac:    0.12,
			BottomFrac: 0.12,
			SideFrac:   0.06,
			Anchor:     AnchorTop,
			Caption:    CaptionStats,
			Palette:    dark,
		},
		{
			Name:       "sydney",
			Path:       "/wallpaper/sydney",
			Columns:    15,
			Rows:       24,
			Scale:      0.82,
			DotFrac:    0.42,
			TopFrac:    0.16,
			BottomFrac: 0.14,
			SideFrac:   0.08,
			Anchor:     AnchorCenter,
			Timezone:   "Australia/Sydney",
			Caption:    CaptionOrdinal,
			Palette:    dark,
		},
	}
}
