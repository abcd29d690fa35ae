// Example demonstrates a form driven by Ebitengine.
//
//	go run ./example/ebiten/
//
// The same form API as the GLFW example, but rendered with DrawTriangles
// and fed from Ebitengine's polled input. Works with mouse, keyboard and
// touch.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/forms"
	ebitenbackend "github.com/go-theft-auto/forms/backend/ebiten"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type game struct {
	form     *forms.Form
	renderer *ebitenbackend.Renderer
	input    *ebitenbackend.InputAdapter
	fps      *forms.Label
}

func (g *game) Update() error {
	g.input.Update()
	g.fps.SetText(fmt.Sprintf("%.0f tps / %.0f fps", ebiten.ActualTPS(), ebiten.ActualFPS()))
	g.form.Update(1.0 / float32(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff})
	g.renderer.SetScreen(screen)
	if err := g.form.Render(); err != nil {
		log.Printf("render: %v", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	renderer := ebitenbackend.NewRenderer()
	font := forms.NewBasicFont()
	renderer.LoadBasicFont(font)

	form := forms.NewForm("demo", screenWidth, screenHeight,
		forms.WithTheme(forms.DarkTheme()),
		forms.WithFontProvider(forms.NewStaticFontProvider("default", font)),
		forms.WithRenderer(renderer),
	)

	g := &game{
		form:     form,
		renderer: renderer,
		input:    ebitenbackend.NewInputAdapter(form),
	}
	buildUI(g)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("forms ebiten example")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func buildUI(g *game) {
	panel := forms.NewContainer("panel",
		forms.WithLayout(forms.LayoutVertical),
		forms.WithBounds(20, 20, 300, 0),
	)
	g.form.AddControl(panel)

	margin := forms.SideLengths{Top: 6, Bottom: 6, Left: 10, Right: 10}

	g.fps = forms.NewLabel("fps", forms.WithMargin(margin))
	panel.AddControl(g.fps)

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

	status := forms.NewLabel("status",
		forms.WithText("volume: 50"),
		forms.WithMargin(margin),
	)
	slider := forms.NewSlider("volume",
		forms.WithRange(0, 100),
		forms.WithValue(50),
		forms.WithWidth(260),
		forms.WithMargin(margin),
	)
	slider.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		status.SetText(fmt.Sprintf("volume: %.0f", slider.Value()))
	}), forms.EventValueChanged)
	panel.AddControl(slider)
	panel.AddControl(status)

	panel.AddControl(forms.NewTextBox("name",
		forms.WithText("touch or type"),
		forms.WithWidth(260),
		forms.WithMargin(margin),
	))
}
