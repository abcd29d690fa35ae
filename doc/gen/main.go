// Command gen renders every widget kind with sample data, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
	"github.com/go-theft-auto/forms/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string
	width  int
	height int
	theme  func() *forms.Theme  // nil = GTATheme
	build  func(f *forms.Form)  // populates the form once
	poke   func(f *forms.Form)  // optional interaction after the first update
	frames int                  // extra frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("forms renderer: %w", err)
	}
	defer renderer.Delete()

	font := forms.NewBasicFont()
	if err := renderer.LoadBasicFont(font); err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	fonts := forms.NewStaticFontProvider("default", font)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, fonts, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, fonts forms.FontProvider, s screenshot, outDir string) error {
	// Only update the renderer projection. Calling window.SetSize here
	// breaks scissoring: GLFW processes resizes asynchronously, so the
	// framebuffer lags the projection. The hidden window stays at 800x600,
	// larger than every screenshot.
	renderer.Resize(s.width, s.height)

	theme := forms.GTATheme
	if s.theme != nil {
		theme = s.theme
	}

	// Fresh form per screenshot so state never leaks between captures.
	form := forms.NewForm(s.name, float32(s.width), float32(s.height),
		forms.WithTheme(theme()),
		forms.WithFontProvider(fonts),
		forms.WithRenderer(renderer),
	)
	s.build(form)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		form.Update(1.0 / 60.0)
		if i == 0 && s.poke != nil {
			// Geometry is resolved now, so hit tests land.
			s.poke(form)
			form.Update(1.0 / 60.0)
		}
		if err := form.Render(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// vpanel adds a vertical-layout container filling most of the form.
func vpanel(f *forms.Form, w, h float32) *forms.Container {
	panel := forms.NewContainer("panel",
		forms.WithLayout(forms.LayoutVertical),
		forms.WithBounds(12, 12, w, h),
	)
	f.AddControl(panel)
	return panel
}

var itemMargin = forms.SideLengths{Top: 4, Bottom: 4, Left: 8, Right: 8}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "label", width: 400, height: 140,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewLabel("plain",
					forms.WithText("Plain text"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewLabel("wrapped",
					forms.WithText("This is wrapped text that will break across lines when it reaches the edge of the available width."),
					forms.WithTextWrap(),
					forms.WithWidth(360),
					forms.WithMargin(itemMargin)))
			},
		},
		{
			name: "button", width: 400, height: 140,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewButton("std",
					forms.WithText("Standard Button"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("disabled",
					forms.WithText("Disabled Button"),
					forms.WithDisabled(true),
					forms.WithMargin(itemMargin)))
			},
		},
		{
			name: "button_states", width: 400, height: 220,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewButton("normal",
					forms.WithText("Normal"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("focused",
					forms.WithText("Focused"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("active",
					forms.WithText("Active (held)"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("off",
					forms.WithText("Disabled"),
					forms.WithDisabled(true),
					forms.WithMargin(itemMargin)))
			},
			poke: func(f *forms.Form) {
				f.SetFocus(f.FindControl("focused"))
				// Hold a press on the third button; no matching release, so
				// it stays active for the capture.
				if w := f.FindControl("active"); w != nil {
					b := w.AbsoluteBounds()
					f.TouchEvent(forms.TouchEvent{
						Kind: forms.TouchPress,
						X:    b.X + b.W/2,
						Y:    b.Y + b.H/2,
					})
				}
			},
		},
		{
			name: "checkbox", width: 320, height: 140,
			build: func(f *forms.Form) {
				p := vpanel(f, 296, 0)
				p.AddControl(forms.NewCheckBox("on",
					forms.WithText("Enabled feature"),
					forms.Checked(),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewCheckBox("off",
					forms.WithText("Disabled feature"),
					forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewCheckBox("locked",
					forms.WithText("Locked option"),
					forms.Checked(),
					forms.WithDisabled(true),
					forms.WithMargin(itemMargin)))
			},
		},
		{
			name: "radio_button", width: 320, height: 140,
			build: func(f *forms.Form) {
				p := vpanel(f, 296, 0)
				for i, label := range []string{"Low", "Medium", "High"} {
					rb := forms.NewRadioButton("q"+label,
						forms.WithText(label),
						forms.WithGroup("quality"),
						forms.WithMargin(itemMargin))
					if i == 1 {
						rb.SetSelected(true)
					}
					p.AddControl(rb)
				}
			},
		},
		{
			name: "slider", width: 400, height: 160,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				for _, v := range []float32{25, 65, 100} {
					s := forms.NewSlider(fmt.Sprintf("s%.0f", v),
						forms.WithRange(0, 100),
						forms.WithValue(v),
						forms.WithWidth(340),
						forms.WithMargin(itemMargin))
					p.AddControl(s)
				}
			},
		},
		{
			name: "textbox", width: 400, height: 100,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewTextBox("name",
					forms.WithText("Hello, world!"),
					forms.WithWidth(340),
					forms.WithMargin(itemMargin)))
			},
		},
		{
			name: "textbox_editing", width: 400, height: 100,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewTextBox("name",
					forms.WithText("Hello, world!"),
					forms.WithWidth(340),
					forms.WithMargin(itemMargin)))
			},
			poke: func(f *forms.Form) {
				// Click into the text box so the caret shows.
				if w := f.FindControl("name"); w != nil {
					b := w.AbsoluteBounds()
					at := forms.TouchEvent{X: b.X + 40, Y: b.Y + b.H/2}
					at.Kind = forms.TouchPress
					f.TouchEvent(at)
					at.Kind = forms.TouchRelease
					f.TouchEvent(at)
				}
			},
			frames: 3,
		},
		{
			name: "vertical_layout", width: 400, height: 220,
			build: func(f *forms.Form) {
				p := vpanel(f, 376, 0)
				p.AddControl(forms.NewLabel("t", forms.WithText("Vertical stack:"), forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("a", forms.WithText("First"), forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("b", forms.WithText("Second"), forms.WithMargin(itemMargin)))
				p.AddControl(forms.NewButton("c",
					forms.WithText("Centered"),
					forms.WithAlignment(forms.AlignTopHCenter),
					forms.WithMargin(itemMargin)))
			},
		},
		{
			name: "flow_layout", width: 400, height: 160,
			build: func(f *forms.Form) {
				flow := forms.NewContainer("flow",
					forms.WithLayout(forms.LayoutFlow),
					forms.WithBounds(12, 12, 376, 136),
				)
				f.AddControl(flow)
				for i := 0; i < 8; i++ {
					flow.AddControl(forms.NewButton(fmt.Sprintf("b%d", i),
						forms.WithText(fmt.Sprintf("Item %d", i+1)),
						forms.WithMargin(forms.SideLengths{Top: 4, Bottom: 4, Left: 4, Right: 4})))
				}
			},
		},
		{
			name: "theme_default", width: 360, height: 200,
			theme: forms.DefaultTheme,
			build: themeSampler,
		},
		{
			name: "theme_gta", width: 360, height: 200,
			theme: forms.GTATheme,
			build: themeSampler,
		},
		{
			name: "theme_dark", width: 360, height: 200,
			theme: forms.DarkTheme,
			build: themeSampler,
		},
	}
}

// themeSampler builds the same small widget set for each theme screenshot.
func themeSampler(f *forms.Form) {
	p := vpanel(f, 336, 0)
	p.AddControl(forms.NewLabel("t", forms.WithText("Sample widgets"), forms.WithMargin(itemMargin)))
	p.AddControl(forms.NewButton("b", forms.WithText("Button"), forms.WithMargin(itemMargin)))
	p.AddControl(forms.NewCheckBox("c", forms.WithText("Checkbox"), forms.Checked(), forms.WithMargin(itemMargin)))
	p.AddControl(forms.NewSlider("s",
		forms.WithRange(0, 1),
		forms.WithValue(0.65),
		forms.WithWidth(300),
		forms.WithMargin(itemMargin)))
}
