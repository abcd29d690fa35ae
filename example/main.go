// Example demonstrates a form with the built-in widget kinds driven by a
// GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer, and
// builds a form with a panel of widgets: labels, a button, a checkbox, a
// slider, a text box and a radio group that switches the active theme.
// Click widgets or move focus with Tab and the arrow keys.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
	"github.com/go-theft-auto/forms/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "forms example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Renderer and the built-in font.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("forms renderer: %w", err)
	}
	defer renderer.Delete()

	font := forms.NewBasicFont()
	if err := renderer.LoadBasicFont(font); err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	// The form owns the widget tree and routes input to it.
	form := forms.NewForm("demo", windowWidth, windowHeight,
		forms.WithTheme(forms.GTATheme()),
		forms.WithFontProvider(forms.NewStaticFontProvider("default", font)),
		forms.WithRenderer(renderer),
	)
	buildUI(form)

	// Window events feed the form; the clipboard backs text box cut/paste.
	opengl.NewGLFWAdapter(window, form)
	forms.SetClipboardProvider(&opengl.GLFWClipboard{Window: window})

	// Main loop.
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		elapsed := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		form.Update(elapsed)
		if err := form.Render(); err != nil {
			return fmt.Errorf("forms render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// buildUI populates the form with a demo panel.
func buildUI(form *forms.Form) {
	panel := forms.NewContainer("panel",
		forms.WithLayout(forms.LayoutVertical),
		forms.WithBounds(20, 20, 340, 0),
	)
	form.AddControl(panel)

	// T toggles the panel. The shortcut only fires when the text box is
	// not consuming key presses.
	form.RegisterAction(forms.Action{
		Name:    "toggle-panel",
		Key:     forms.KeyT,
		Handler: func() { panel.SetVisible(!panel.Visible()) },
	})

	margin := forms.SideLengths{Top: 6, Bottom: 6, Left: 10, Right: 10}

	panel.AddControl(forms.NewLabel("title",
		forms.WithText("forms demo"),
		forms.WithMargin(margin),
	))

	// Button with a click counter.
	clicks := 0
	button := forms.NewButton("clicker",
		forms.WithText("Click me (0)"),
		forms.WithMargin(margin),
	)
	button.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		clicks++
		button.SetText(fmt.Sprintf("Click me (%d)", clicks))
	}), forms.EventClick)
	panel.AddControl(button)

	// Slider, gated by the checkbox.
	slider := forms.NewSlider("volume",
		forms.WithRange(0, 100),
		forms.WithValue(50),
		forms.WithStep(5),
		forms.WithWidth(300),
		forms.WithMargin(margin),
	)
	status := forms.NewLabel("status",
		forms.WithText("volume: 50"),
		forms.WithMargin(margin),
	)
	slider.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		status.SetText(fmt.Sprintf("volume: %.0f", slider.Value()))
	}), forms.EventValueChanged)

	enable := forms.NewCheckBox("enable",
		forms.WithText("Enable slider"),
		forms.Checked(),
		forms.WithMargin(margin),
	)
	enable.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		slider.SetEnabled(enable.Checked())
	}), forms.EventValueChanged)

	panel.AddControl(enable)
	panel.AddControl(slider)
	panel.AddControl(status)

	// Text box. Ctrl+C/X/V use the GLFW clipboard, Ctrl+Z/Y undo and redo.
	panel.AddControl(forms.NewTextBox("name",
		forms.WithText("type here"),
		forms.WithWidth(300),
		forms.WithMargin(margin),
	))

	// Theme switcher.
	panel.AddControl(forms.NewLabel("themeTitle",
		forms.WithText("Theme"),
		forms.WithMargin(margin),
	))
	themes := []struct {
		name  string
		build func() *forms.Theme
	}{
		{"GTA", forms.GTATheme},
		{"Default", forms.DefaultTheme},
		{"Dark", forms.DarkTheme},
	}
	for i, t := range themes {
		t := t
		rb := forms.NewRadioButton("theme-"+t.name,
			forms.WithText(t.name),
			forms.WithGroup("theme"),
			forms.WithMargin(margin),
		)
		if i == 0 {
			rb.SetSelected(true)
		}
		rb.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
			if rb.Selected() {
				form.SetTheme(t.build())
			}
		}), forms.EventValueChanged)
		panel.AddControl(rb)
	}
}
