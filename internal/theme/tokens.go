package theme

// TextColors are the text colour slots.
type TextColors struct {
	Primary   string
	Secondary string
	Tertiary  string
	Inverse   string
	Disabled  string
}

// StatusColors are semantic feedback colours.
type StatusColors struct {
	Success string
	Warning string
	Error   string
	Info    string
}

// InteractiveColors are the colours of interactive element states.
type InteractiveColors struct {
	Hover    string
	Active   string
	Focus    string
	Disabled string
}

// Gradients are optional CSS gradient strings.
type Gradients struct {
	Primary string
	Hero    string
}

// ColorTokens is the full colour table for one variant/mode/scheme.
//
// Every slot must hold a valid CSS colour. Tertiary and Gradients are
// optional. Text.Inverse is meant to be readable on Primary; Audit
// reports the ratio but nothing enforces it.
type ColorTokens struct {
	Primary     string
	Secondary   string
	Tertiary    string
	Background  string
	Surface     string
	Text        TextColors
	Border      string
	Shadow      string
	Status      StatusColors
	Interactive InteractiveColors
	Gradients   *Gradients
}

// FontSizes is the type scale.
type FontSizes struct {
	XS   string
	SM   string
	Base string
	LG   string
	XL   string
	XXL  string
}

// FontWeights are the weights used by the brand fonts.
type FontWeights struct {
	Regular  string
	Medium   string
	Semibold string
	Bold     string
}

// LineHeights are unitless line-height multipliers.
type LineHeights struct {
	Tight   string
	Normal  string
	Relaxed string
}

// Typography groups the font tokens.
type Typography struct {
	FontFamily  string
	MonoFamily  string
	Sizes       FontSizes
	Weights     FontWeights
	LineHeights LineHeights
}

// Spacing is the spacing scale.
type Spacing struct {
	XS  string
	SM  string
	MD  string
	LG  string
	XL  string
	XXL string
}

// Radius is the border-radius scale.
type Radius struct {
	SM   string
	MD   string
	LG   string
	Full string
}

// Shadows is the elevation scale.
type Shadows struct {
	SM string
	MD string
	LG string
	XL string
}

// Animation holds transition timings.
type Animation struct {
	Fast   string
	Normal string
	Slow   string
	Easing string
}

// Breakpoints are the responsive layout widths. For the terminal UI
// they are read as column counts.
type Breakpoints struct {
	SM int
	MD int
	LG int
	XL int
}

// ResolvedTheme is the token set for one (variant, mode, scheme) triple.
// It is a value: switching produces a new ResolvedTheme rather than
// mutating an existing one.
type ResolvedTheme struct {
	Variant     Variant
	Mode        Mode // always ModeLight or ModeDark
	Scheme      ColorScheme
	Colors      ColorTokens
	Typography  Typography
	Spacing     Spacing
	Radius      Radius
	Shadows     Shadows
	Animation   *Animation
	Breakpoints Breakpoints
}

// IsDark reports whether the theme was resolved for dark mode.
func (t ResolvedTheme) IsDark() bool { return t.Mode == ModeDark }

// clone returns a deep copy so callers cannot alias the package tables.
func (c ColorTokens) clone() ColorTokens {
	if c.Gradients != nil {
		g := *c.Gradients
		c.Gradients = &g
	}
	return c
}
