package forms

// Spacing constants for consistent theme metrics (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
	Space3XL  float32 = 32 // 3x extra large
	Space4XL  float32 = 48 // 4x extra large
)

// Skin is the nine-patch background of a control: an atlas region sliced by
// border distances into nine areas, so corners keep their size while edges
// and the center stretch. An empty region draws as a solid untextured quad.
type Skin struct {
	region      Rect
	border      SideLengths
	color       uint32
	borderColor uint32
}

// NewSkin creates a skin from an atlas region, the nine-patch border split
// and a modulation color.
func NewSkin(region Rect, border SideLengths, color uint32) *Skin {
	return &Skin{region: region, border: border, color: color}
}

// SolidSkin creates an untextured skin drawn as a flat colored quad.
func SolidSkin(color uint32) *Skin {
	return &Skin{color: color}
}

// Region returns the skin's atlas region in texels.
func (s *Skin) Region() Rect { return s.region }

// PatchBorder returns the nine-patch slice distances.
func (s *Skin) PatchBorder() SideLengths { return s.border }

// Color returns the skin's modulation color.
func (s *Skin) Color() uint32 { return s.color }

// BorderColor returns the outline color used when an untextured skin has a
// border split. Textured skins carry their border in the atlas art instead.
func (s *Skin) BorderColor() uint32 { return s.borderColor }

// SetBorderColor sets the outline color for untextured skins.
func (s *Skin) SetBorderColor(c uint32) *Skin { s.borderColor = c; return s }

func (s *Skin) clone() *Skin {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ThemeImage is a named atlas region with a modulation color. Widgets look
// images up by id, such as a checkbox's mark or a slider's track.
type ThemeImage struct {
	id     string
	region Rect
	color  uint32
}

// NewThemeImage creates a named image for an overlay's image list.
func NewThemeImage(id string, region Rect, color uint32) *ThemeImage {
	return &ThemeImage{id: id, region: region, color: color}
}

// ID returns the image's lookup id.
func (i *ThemeImage) ID() string { return i.id }

// Region returns the image's atlas region in texels.
func (i *ThemeImage) Region() Rect { return i.region }

// Color returns the image's modulation color.
func (i *ThemeImage) Color() uint32 { return i.color }

// ImageList is the set of named images available to a control in one state.
type ImageList struct {
	images map[string]*ThemeImage
}

// NewImageList creates an image list from the given images.
func NewImageList(images ...*ThemeImage) *ImageList {
	l := &ImageList{images: make(map[string]*ThemeImage, len(images))}
	for _, img := range images {
		l.images[img.id] = img
	}
	return l
}

// Add inserts or replaces an image by id.
func (l *ImageList) Add(img *ThemeImage) {
	if l.images == nil {
		l.images = make(map[string]*ThemeImage)
	}
	l.images[img.id] = img
}

// Image looks up an image by id.
func (l *ImageList) Image(id string) (*ThemeImage, bool) {
	if l == nil {
		return nil, false
	}
	img, ok := l.images[id]
	return img, ok
}

func (l *ImageList) clone() *ImageList {
	if l == nil {
		return nil
	}
	c := &ImageList{images: make(map[string]*ThemeImage, len(l.images))}
	for id, img := range l.images {
		cp := *img
		c.images[id] = &cp
	}
	return c
}

// Overlay bundles every themed resource for one control state: skin, named
// images, cursor, font, text attributes and the box metrics. Overlays are
// template data shared by every control that references their style; control
// setters copy the whole style before mutating (see Control).
type Overlay struct {
	skin        *Skin
	cursor      *ThemeImage
	images      *ImageList
	font        Font
	fontSize    float32
	textColor   uint32
	textAlign   Alignment
	rightToLeft bool
	margin      SideLengths
	border      SideLengths
	padding     SideLengths
}

// NewOverlay creates an overlay with neutral defaults: no skin, no images,
// no cursor, white text, top-left alignment, zero box metrics.
func NewOverlay() *Overlay {
	return &Overlay{
		textColor: ColorWhite,
		textAlign: AlignTopLeft,
	}
}

// Skin returns the overlay's skin, or nil if the state has none.
func (o *Overlay) Skin() *Skin { return o.skin }

// SetSkin sets the overlay's skin.
func (o *Overlay) SetSkin(s *Skin) *Overlay { o.skin = s; return o }

// SkinColor returns the skin's color, or transparent without a skin.
func (o *Overlay) SkinColor() uint32 {
	if o.skin == nil {
		return ColorTransparent
	}
	return o.skin.color
}

// SetSkinColor sets the skin's color, creating a solid skin if absent.
func (o *Overlay) SetSkinColor(c uint32) {
	if o.skin == nil {
		o.skin = &Skin{}
	}
	o.skin.color = c
}

// SkinRegion returns the skin's atlas region, or an empty rectangle.
func (o *Overlay) SkinRegion() Rect {
	if o.skin == nil {
		return Rect{}
	}
	return o.skin.region
}

// SetSkinRegion sets the skin's atlas region, creating a skin if absent.
func (o *Overlay) SetSkinRegion(r Rect) {
	if o.skin == nil {
		o.skin = &Skin{color: ColorWhite}
	}
	o.skin.region = r
}

// Cursor returns the overlay's cursor image, or nil.
func (o *Overlay) Cursor() *ThemeImage { return o.cursor }

// SetCursor sets the overlay's cursor image.
func (o *Overlay) SetCursor(img *ThemeImage) *Overlay { o.cursor = img; return o }

// CursorColor returns the cursor's color, or transparent without a cursor.
func (o *Overlay) CursorColor() uint32 {
	if o.cursor == nil {
		return ColorTransparent
	}
	return o.cursor.color
}

// SetCursorColor sets the cursor's color, creating a cursor if absent.
func (o *Overlay) SetCursorColor(c uint32) {
	if o.cursor == nil {
		o.cursor = &ThemeImage{id: "cursor"}
	}
	o.cursor.color = c
}

// CursorRegion returns the cursor's atlas region, or an empty rectangle.
func (o *Overlay) CursorRegion() Rect {
	if o.cursor == nil {
		return Rect{}
	}
	return o.cursor.region
}

// SetCursorRegion sets the cursor's atlas region, creating a cursor if absent.
func (o *Overlay) SetCursorRegion(r Rect) {
	if o.cursor == nil {
		o.cursor = &ThemeImage{id: "cursor", color: ColorWhite}
	}
	o.cursor.region = r
}

// Images returns the overlay's image list, or nil.
func (o *Overlay) Images() *ImageList { return o.images }

// SetImages sets the overlay's image list.
func (o *Overlay) SetImages(l *ImageList) *Overlay { o.images = l; return o }

// Image looks up a named image in the overlay's image list.
func (o *Overlay) Image(id string) (*ThemeImage, bool) {
	return o.images.Image(id)
}

// Font returns the overlay's font, or nil to use the form's default font.
func (o *Overlay) Font() Font { return o.font }

// SetFont sets the overlay's font.
func (o *Overlay) SetFont(f Font) *Overlay { o.font = f; return o }

// FontSize returns the overlay's font size.
func (o *Overlay) FontSize() float32 { return o.fontSize }

// SetFontSize sets the overlay's font size.
func (o *Overlay) SetFontSize(s float32) *Overlay { o.fontSize = s; return o }

// TextColor returns the overlay's text color.
func (o *Overlay) TextColor() uint32 { return o.textColor }

// SetTextColor sets the overlay's text color.
func (o *Overlay) SetTextColor(c uint32) *Overlay { o.textColor = c; return o }

// TextAlignment returns the overlay's text alignment.
func (o *Overlay) TextAlignment() Alignment { return o.textAlign }

// SetTextAlignment sets the overlay's text alignment.
func (o *Overlay) SetTextAlignment(a Alignment) *Overlay { o.textAlign = a; return o }

// TextRightToLeft returns true if text draws right-to-left.
func (o *Overlay) TextRightToLeft() bool { return o.rightToLeft }

// SetTextRightToLeft sets the overlay's text direction.
func (o *Overlay) SetTextRightToLeft(rtl bool) *Overlay { o.rightToLeft = rtl; return o }

// Margin returns the overlay's margin.
func (o *Overlay) Margin() SideLengths { return o.margin }

// SetMargin sets the overlay's margin.
func (o *Overlay) SetMargin(m SideLengths) *Overlay { o.margin = m; return o }

// Border returns the overlay's border thickness.
func (o *Overlay) Border() SideLengths { return o.border }

// SetBorder sets the overlay's border thickness.
func (o *Overlay) SetBorder(b SideLengths) *Overlay { o.border = b; return o }

// Padding returns the overlay's padding.
func (o *Overlay) Padding() SideLengths { return o.padding }

// SetPadding sets the overlay's padding.
func (o *Overlay) SetPadding(p SideLengths) *Overlay { o.padding = p; return o }

func (o *Overlay) clone() *Overlay {
	if o == nil {
		return nil
	}
	c := *o
	c.skin = o.skin.clone()
	c.images = o.images.clone()
	if o.cursor != nil {
		cursor := *o.cursor
		c.cursor = &cursor
	}
	return &c
}

// Style is a named collection of four overlays, one per control state.
// Styles live in a Theme and are shared by reference across controls;
// nothing in the framework mutates a shared style in place.
type Style struct {
	name     string
	overlays [overlayMax]*Overlay
}

// NewStyle creates a style with the given overlay for the normal state.
// The other states fall back to the normal overlay until set.
func NewStyle(name string, normal *Overlay) *Style {
	s := &Style{name: name}
	s.overlays[OverlayNormal] = normal
	return s
}

// Name returns the style's name within its theme.
func (s *Style) Name() string { return s.name }

// SetOverlay assigns the overlay for one state.
func (s *Style) SetOverlay(t OverlayType, o *Overlay) *Style {
	if t >= 0 && t < overlayMax {
		s.overlays[t] = o
	}
	return s
}

// Overlay returns the overlay for the given type. A state without its own
// overlay resolves to the normal overlay; a style with no overlays at all
// returns a shared neutral overlay so lookups never fail.
func (s *Style) Overlay(t OverlayType) *Overlay {
	if t >= 0 && t < overlayMax {
		if o := s.overlays[t]; o != nil {
			return o
		}
	}
	if o := s.overlays[OverlayNormal]; o != nil {
		return o
	}
	return neutralOverlay
}

// OverlayForState resolves the overlay for a single control state.
func (s *Style) OverlayForState(state State) *Overlay {
	return s.Overlay(overlayForState(state))
}

// mutableOverlay returns the overlay stored for t, materializing a copy of
// the resolved fallback when the slot is empty. Only called on styles owned
// by a single control, never on shared ones.
func (s *Style) mutableOverlay(t OverlayType) *Overlay {
	if t < 0 || t >= overlayMax {
		t = OverlayNormal
	}
	if s.overlays[t] == nil {
		s.overlays[t] = s.Overlay(t).clone()
	}
	return s.overlays[t]
}

// neutralOverlay backs lookups on styles that have no overlays.
// Never mutated.
var neutralOverlay = NewOverlay()

// clone deep-copies the style and every overlay it holds.
// Backs the copy-on-write performed by control property setters.
func (s *Style) clone() *Style {
	c := &Style{name: s.name}
	for i, o := range s.overlays {
		c.overlays[i] = o.clone()
	}
	return c
}
