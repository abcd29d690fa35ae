package forms

// Theme is the shared visual resource set for a form: an optional texture
// atlas, named styles, and the default font. Themes are built in code; this
// package owns no file format. Controls reference theme styles by name and
// never mutate them (see the copy-on-write semantics on Control).
type Theme struct {
	texture   uint32
	atlasSize Vec2
	styles    map[string]*Style
	font      Font
}

// ThemeOption configures a theme during construction.
type ThemeOption func(*Theme)

// WithAtlas sets the theme's texture atlas and its size in texels.
// Skin, image and cursor regions index into this atlas.
func WithAtlas(texture uint32, width, height float32) ThemeOption {
	return func(t *Theme) {
		t.texture = texture
		t.atlasSize = Vec2{X: width, Y: height}
	}
}

// WithDefaultFont sets the font used by overlays that name none.
func WithDefaultFont(f Font) ThemeOption {
	return func(t *Theme) {
		t.font = f
	}
}

// NewTheme creates an empty theme. Without WithAtlas the theme is
// untextured: skins and images draw as flat colored quads.
func NewTheme(opts ...ThemeOption) *Theme {
	t := &Theme{styles: make(map[string]*Style)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Texture returns the atlas texture id, 0 for untextured themes.
func (t *Theme) Texture() uint32 { return t.texture }

// AtlasSize returns the atlas dimensions in texels.
func (t *Theme) AtlasSize() Vec2 { return t.atlasSize }

// UV converts a texel region into normalized texture coordinates.
func (t *Theme) UV(region Rect) (u0, v0, u1, v1 float32) {
	if t.atlasSize.X <= 0 || t.atlasSize.Y <= 0 {
		return 0, 0, 0, 0
	}
	return region.X / t.atlasSize.X,
		region.Y / t.atlasSize.Y,
		(region.X + region.W) / t.atlasSize.X,
		(region.Y + region.H) / t.atlasSize.Y
}

// DefaultFont returns the theme's default font, or nil.
func (t *Theme) DefaultFont() Font { return t.font }

// SetDefaultFont sets the theme's default font.
func (t *Theme) SetDefaultFont(f Font) { t.font = f }

// AddStyle registers a style under its name, replacing any previous one.
func (t *Theme) AddStyle(s *Style) {
	t.styles[s.name] = s
}

// Style looks up a style by name.
func (t *Theme) Style(name string) (*Style, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// StyleFor resolves the style for a widget kind: the style named after the
// kind if present, otherwise the style named "default", otherwise an empty
// style whose lookups yield neutral values.
func (t *Theme) StyleFor(kind string) *Style {
	if s, ok := t.styles[kind]; ok {
		return s
	}
	if s, ok := t.styles["default"]; ok {
		if formsVerbose() {
			formsLogger.Debug("style fallback to default", "kind", kind)
		}
		return s
	}
	if formsVerbose() {
		formsLogger.Debug("no style for kind", "kind", kind)
	}
	return emptyStyle
}

// emptyStyle backs StyleFor on themes with no matching styles.
var emptyStyle = NewStyle("", nil)

// stateColors is a palette shorthand used by the premade themes:
// one value per overlay, indexed by OverlayType.
type stateColors [overlayMax]uint32

// uniformColors repeats one color across all four states.
func uniformColors(c uint32) stateColors {
	return stateColors{c, c, c, c}
}

// solidStyle builds an untextured style: each state gets a flat skin with an
// outline border, a text color, and shared box metrics.
func solidStyle(name string, fill, border, text stateColors, borderSize float32, padding SideLengths) *Style {
	s := NewStyle(name, nil)
	for t := OverlayNormal; t < overlayMax; t++ {
		o := NewOverlay().
			SetSkin(SolidSkin(fill[t]).SetBorderColor(border[t])).
			SetTextColor(text[t]).
			SetBorder(UniformSides(borderSize)).
			SetPadding(padding)
		o.SetTextAlignment(AlignVCenterLeft)
		s.SetOverlay(t, o)
	}
	return s
}

// addStateImages attaches per-state copies of named solid images to a style.
// colors maps image id to its per-state colors.
func addStateImages(s *Style, colors map[string]stateColors) {
	for t := OverlayNormal; t < overlayMax; t++ {
		list := NewImageList()
		for id, c := range colors {
			list.Add(NewThemeImage(id, Rect{}, c[t]))
		}
		s.Overlay(t).SetImages(list)
	}
}

// DefaultTheme returns an untextured theme with sensible dark defaults.
// States: normal gray, focus outlined, active highlighted, disabled dimmed.
func DefaultTheme() *Theme {
	t := NewTheme()

	// Containers and the form background
	t.AddStyle(solidStyle("default",
		stateColors{RGBA(20, 20, 20, 200), RGBA(20, 20, 20, 200), RGBA(20, 20, 20, 200), RGBA(20, 20, 20, 150)},
		uniformColors(RGBA(80, 80, 80, 255)),
		uniformColors(ColorWhite),
		1, UniformSides(SpaceMD)))

	// Plain text
	label := solidStyle("label",
		uniformColors(ColorTransparent),
		uniformColors(ColorTransparent),
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		0, SideLengths{})
	t.AddStyle(label)

	// Buttons
	t.AddStyle(solidStyle("button",
		stateColors{RGBA(50, 50, 50, 255), RGBA(70, 70, 70, 255), RGBA(90, 90, 90, 255), RGBA(30, 30, 30, 255)},
		stateColors{RGBA(80, 80, 80, 255), ColorCyan, ColorCyan, RGBA(50, 50, 50, 255)},
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceMD, Right: SpaceMD}))

	// Checkboxes and radio buttons reuse the button palette with a mark image
	check := solidStyle("checkbox",
		stateColors{RGBA(30, 30, 30, 255), RGBA(40, 40, 50, 255), RGBA(50, 50, 60, 255), RGBA(25, 25, 25, 255)},
		stateColors{RGBA(100, 100, 100, 255), ColorCyan, ColorCyan, RGBA(50, 50, 50, 255)},
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceSM, Right: SpaceMD})
	addStateImages(check, map[string]stateColors{
		"mark": {RGBA(50, 100, 150, 255), RGBA(0, 150, 200, 255), RGBA(0, 180, 230, 255), ColorGray},
	})
	t.AddStyle(check)

	radio := solidStyle("radiobutton",
		stateColors{RGBA(30, 30, 30, 255), RGBA(40, 40, 50, 255), RGBA(50, 50, 60, 255), RGBA(25, 25, 25, 255)},
		stateColors{RGBA(100, 100, 100, 255), ColorCyan, ColorCyan, RGBA(50, 50, 50, 255)},
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceSM, Right: SpaceMD})
	addStateImages(radio, map[string]stateColors{
		"mark": {RGBA(50, 100, 150, 255), RGBA(0, 150, 200, 255), RGBA(0, 180, 230, 255), ColorGray},
	})
	t.AddStyle(radio)

	// Sliders
	slider := solidStyle("slider",
		uniformColors(ColorTransparent),
		uniformColors(ColorTransparent),
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		0, SideLengths{Top: SpaceSM, Bottom: SpaceSM})
	addStateImages(slider, map[string]stateColors{
		"track": uniformColors(RGBA(40, 40, 40, 255)),
		"fill":  {RGBA(50, 100, 150, 255), RGBA(0, 150, 200, 255), RGBA(0, 180, 230, 255), RGBA(60, 60, 60, 255)},
		"grab":  {RGBA(100, 100, 100, 255), RGBA(120, 120, 120, 255), RGBA(140, 140, 140, 255), RGBA(60, 60, 60, 255)},
	})
	t.AddStyle(slider)

	// Text boxes
	textbox := solidStyle("textbox",
		stateColors{RGBA(30, 30, 30, 255), RGBA(40, 40, 50, 255), RGBA(40, 40, 50, 255), RGBA(25, 25, 25, 255)},
		stateColors{RGBA(100, 100, 100, 255), ColorCyan, ColorCyan, RGBA(50, 50, 50, 255)},
		stateColors{ColorWhite, ColorWhite, ColorWhite, ColorGray},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceSM, Right: SpaceSM})
	addStateImages(textbox, map[string]stateColors{
		"caret":     uniformColors(ColorWhite),
		"selection": uniformColors(RGBA(50, 100, 150, 180)),
	})
	t.AddStyle(textbox)

	return t
}

// GTATheme returns an untextured theme with cyan and yellow accents
// reminiscent of the San Andreas menus.
func GTATheme() *Theme {
	t := NewTheme()

	gtaYellow := RGBA(255, 200, 0, 255)
	gtaCyan := RGBA(0, 150, 200, 255)

	t.AddStyle(solidStyle("default",
		uniformColors(RGBA(0, 0, 0, 220)),
		uniformColors(RGBA(100, 100, 100, 255)),
		uniformColors(ColorWhite),
		1, UniformSides(SpaceLG)))

	label := solidStyle("label",
		uniformColors(ColorTransparent),
		uniformColors(ColorTransparent),
		stateColors{ColorWhite, gtaYellow, gtaYellow, RGBA(128, 128, 128, 255)},
		0, SideLengths{})
	t.AddStyle(label)

	t.AddStyle(solidStyle("button",
		stateColors{RGBA(40, 40, 40, 255), RGBA(60, 80, 100, 255), gtaCyan, RGBA(30, 30, 30, 150)},
		stateColors{RGBA(100, 100, 100, 255), gtaCyan, RGBA(0, 200, 255, 255), RGBA(50, 50, 50, 150)},
		stateColors{ColorWhite, gtaYellow, ColorWhite, RGBA(128, 128, 128, 255)},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceLG, Right: SpaceLG}))

	check := solidStyle("checkbox",
		stateColors{RGBA(20, 20, 20, 255), RGBA(30, 40, 50, 255), RGBA(30, 40, 50, 255), RGBA(20, 20, 20, 150)},
		stateColors{RGBA(100, 100, 100, 255), gtaCyan, RGBA(0, 200, 255, 255), RGBA(50, 50, 50, 150)},
		stateColors{ColorWhite, gtaYellow, ColorWhite, RGBA(128, 128, 128, 255)},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceSM, Right: SpaceLG})
	addStateImages(check, map[string]stateColors{
		"mark": {gtaCyan, RGBA(0, 180, 230, 255), RGBA(0, 200, 255, 255), RGBA(80, 80, 80, 255)},
	})
	t.AddStyle(check)
	radio := solidStyle("radiobutton",
		stateColors{RGBA(20, 20, 20, 255), RGBA(30, 40, 50, 255), RGBA(30, 40, 50, 255), RGBA(20, 20, 20, 150)},
		stateColors{RGBA(100, 100, 100, 255), gtaCyan, RGBA(0, 200, 255, 255), RGBA(50, 50, 50, 150)},
		stateColors{ColorWhite, gtaYellow, ColorWhite, RGBA(128, 128, 128, 255)},
		1, SideLengths{Top: SpaceSM, Bottom: SpaceSM, Left: SpaceSM, Right: SpaceLG})
	addStateImages(radio, map[string]stateColors{
		"mark": {gtaCyan, RGBA(0, 180, 230, 255), RGBA(0, 200, 255, 255), RGBA(80, 80, 80, 255)},
	})
	t.AddStyle(radio)

	slider := solidStyle("slider",
		uniformColors(ColorTransparent),
		uniformColors(ColorTransparent),
		stateColors{ColorWhite, gtaYellow, ColorWhite, RGBA(128, 128, 128, 255)},
		0, SideLengths{Top: SpaceSM, Bottom: SpaceSM})
	addStateImages(slider, map[string]stateColors{
		"track": uniformColors(RGBA(30, 30, 30, 255)),
		"fill":  {RGBA(0, 120, 180, 255), gtaCyan, RGBA(0, 200, 255, 255), RGBA(60, 60, 60, 255)},
		"grab":  {gtaCyan, RGBA(0, 180, 230, 255), RGBA(0, 200, 255, 255), RGBA(60, 60, 60, 255)},
	})
	t.AddStyle(slider)

	textbox := solidStyle("textbox",
		stateColors{RGBA(20, 20, 20, 255), RGBA(30, 40, 50, 255), RGBA(30, 40, 50, 255), RGBA(20, 20, 20, 150)},
		stateColors{gtaCyan, RGBA(0, 200, 255, 255), RGBA(0, 200, 255, 255), RGBA(50, 50, 50, 150)},
		stateColors{ColorWhite, ColorWhite, ColorWhite, RGBA(128, 128, 128, 255)},
		1, UniformSides(SpaceSM))
	addStateImages(textbox, map[string]stateColors{
		"caret":     uniformColors(RGBA(0, 200, 255, 255)),
		"selection": uniformColors(RGBA(0, 120, 180, 180)),
	})
	t.AddStyle(textbox)

	return t
}

// DarkTheme returns the default theme with a flatter, more modern palette.
func DarkTheme() *Theme {
	t := DefaultTheme()

	royal := RGBA(65, 105, 225, 255)
	if s, ok := t.Style("button"); ok {
		s.Overlay(OverlayNormal).SetSkinColor(RGBA(45, 45, 45, 255))
		s.Overlay(OverlayFocus).SetSkinColor(RGBA(65, 65, 65, 255))
		s.Overlay(OverlayFocus).Skin().SetBorderColor(royal)
		s.Overlay(OverlayActive).SetSkinColor(royal)
	}
	if s, ok := t.Style("default"); ok {
		s.Overlay(OverlayNormal).SetSkinColor(RGBA(25, 25, 25, 240))
	}
	return t
}
