/*
Package forms provides a retained-mode widget toolkit for game UIs: HUDs,
menus, option screens and editor overlays rendered inside a game's own
frame loop.

# Overview

The package is built around a persistent widget tree owned by a Form.
Widgets are created once, wired with listeners, and mutated through
setters; the form tracks which parts of the tree changed and re-resolves
layout only for frames that need it. Rendering is split from the tree: a
form emits batched draw lists that a pluggable Renderer turns into GPU
work, so the same UI runs under OpenGL, Ebitengine, or anything else
that can draw textured triangles.

Every widget moves through four states (normal, focused, active,
disabled) and a Theme selects per-state art and text attributes for it.
Widget-level style overrides are copy-on-write: reading style is free
and shared, the first per-widget override clones the style for that
widget alone.

# Quick Start

	// Setup (GLFW backend; see example/ for the full program)
	renderer, _ := opengl.NewRenderer(800, 600)
	font := forms.NewBasicFont()
	renderer.LoadBasicFont(font)

	form := forms.NewForm("menu", 800, 600,
	    forms.WithTheme(forms.GTATheme()),
	    forms.WithFontProvider(forms.NewStaticFontProvider("default", font)),
	    forms.WithRenderer(renderer),
	)
	opengl.NewGLFWAdapter(window, form)

	// Build the tree once.
	button := forms.NewButton("start", forms.WithText("Start Game"))
	button.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
	    startGame()
	}), forms.EventClick)
	form.AddControl(button)

	// Game loop.
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    form.Update(deltaTime)
	    form.Render()
	    window.SwapBuffers()
	}

# Widget Kinds

	Label        Static text, optional word wrap.
	Button       Clickable, fires EventPress / EventRelease / EventClick.
	CheckBox     Toggles on click, fires EventValueChanged.
	RadioButton  One selected per named group; both sides of a switch notify.
	Slider       Draggable value in a range with optional step snapping.
	TextBox      Editable single-line text with caret, selection, clipboard
	             and undo.
	Container    Groups children under a layout, clips them to its viewport.
	Form         Root container; routes input, drives updates, renders.

All constructors take a stable string ID and functional options:

	forms.NewSlider("volume",
	    forms.WithRange(0, 100),
	    forms.WithValue(50),
	    forms.WithStep(5),
	    forms.WithBounds(20, 20, 300, 0),
	)

Common options: WithBounds, WithPosition, WithSize, WithWidth,
WithHeight, AutoSize, WithAlignment, WithMargin, WithOpacity,
WithZIndex, WithStyleName, WithFocusable, WithDisabled, WithVisible,
WithConsumeInput. Widget-specific: WithText, WithTextWrap, WithRange,
WithStep, WithValue, Checked, WithGroup, WithLayout.

Custom widgets embed Control (or Button for click behavior) and can
define their own typed option keys with NewOptKey / WithOpt.

# States

Every control is in exactly one of four states:

	StateNormal    At rest.
	StateFocus     Holds keyboard focus.
	StateActive    Being pressed or dragged.
	StateDisabled  Ignores input, draws dimmed.

State drives both input handling and appearance: the theme's style
resolves a per-state overlay (skin, colors, font, margins) each time a
control draws or lays out. Styled accessors take the state they
describe, so a button can have a different text color while active:

	button.SetTextColor(forms.RGBA(255, 200, 0, 255), forms.StateActive)

Setters like this are copy-on-write. Widgets sharing a theme style read
from the same Style until the first override, which clones the style
for just that widget; siblings keep the shared one.

# Layouts

Containers place children through a Layout:

	LayoutAbsolute  Children keep their explicit positions. Children with
	                a non-default alignment anchor to the container edge
	                instead.
	LayoutVertical  Top-to-bottom stack; horizontal alignment per child.
	LayoutFlow      Left-to-right, wrapping into rows.

Auto-sized dimensions (the default for text widgets) track measured
content; containers can auto-size to wrap their children. Positions are
relative to the parent's viewport, which is the parent's bounds inset
by its border and padding.

# Events and Listeners

Listeners subscribe to a bitmask of event types on any control:

	slider.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
	    setVolume(slider.Value())
	}), forms.EventValueChanged)

	EventPress         Contact down inside the control.
	EventRelease       Matching contact up.
	EventClick         Press and release both inside the control.
	EventValueChanged  Checkbox toggle, radio switch, slider move.
	EventTextChanged   TextBox edits (user input, not SetText).

Notification is synchronous, in registration order. ListenerFunc wraps
a closure; keep the returned value to RemoveListener later.

# Focus and Keyboard

Focusable widgets (buttons and their kin, sliders, text boxes) receive
keyboard input when focused. Clicking a focusable widget focuses it;
clicking empty space clears focus.

	Tab / Shift+Tab  Cycle focus in tree order.
	Arrow keys       Move focus spatially toward the nearest widget in
	                 that direction (when the focused widget does not
	                 consume arrows itself).
	Space / Enter    Activate the focused button, checkbox or radio.
	Left / Right     Nudge the focused slider by its step.

## TextBox Shortcuts

	Left / Right     Move caret; Ctrl jumps by word; Shift extends selection
	Home / End       Jump to start / end; Shift extends selection
	Ctrl+A           Select all
	Ctrl+C / X / V   Copy, cut, paste (requires a ClipboardProvider)
	Ctrl+Z           Undo
	Ctrl+Y           Redo (also Ctrl+Shift+Z)
	Backspace        Delete selection or character before caret
	Delete           Delete selection or character after caret
	Enter            Commit edit and release focus
	Escape           Revert to the text before editing began

# Theming

A Theme maps widget kinds to named styles; styles hold per-state
overlays. Three themes ship with the package:

	forms.DefaultTheme()  Neutral flat colors.
	forms.GTATheme()      High-contrast menu look.
	forms.DarkTheme()     Dim editor look.

Custom themes build on NewTheme with WithAtlas for image-backed skins
(nine-patch borders, checkbox marks, slider tracks, caret art):

	theme := forms.NewTheme(forms.WithAtlas(textureID, atlasW, atlasH))
	theme.AddStyle(myButtonStyle)
	form.SetTheme(theme)

SetTheme swaps art live: widgets bound to shared styles rebind to the
new theme on the next update, widget-local overrides survive.

# Fonts

Text rendering goes through a FontProvider so games can plug their own
rasterizer. The built-in BasicFont needs no files; upload its atlas
through the backend and hand it to the form:

	font := forms.NewBasicFont()
	renderer.LoadBasicFont(font)
	form.SetFontProvider(forms.NewStaticFontProvider("default", font))

A Font exposes measurement and per-glyph quads; any atlas-based font
(stb_truetype dumps, BMFont exports) adapts in a few dozen lines.

# Animation

Controls implement AnimationTarget, a typed property contract for
external tweening engines:

	AnimatePosition / X / Y    Desired bounds origin.
	AnimateSize / Width/Height Desired bounds size.
	AnimateOpacity             Cumulative draw opacity.

SetAnimationPropertyValue blends toward target components with a
weight, so an engine can run several animations against one property
and fade between them.

# Clipboard Integration

TextBox cut/copy/paste goes through a process-wide ClipboardProvider:

	forms.SetClipboardProvider(&opengl.GLFWClipboard{Window: window})

Without a provider the shortcuts are no-ops. Implementations are two
methods (GetText/SetText); see backend/opengl for the GLFW one.

# Backends

Two render/input backends ship in backend/:

	backend/opengl  OpenGL 4.1 renderer with scissor clipping plus a GLFW
	                adapter (window callbacks to form events, clipboard).
	backend/ebiten  Ebitengine renderer using DrawTriangles and SubImage
	                clipping plus a polled input adapter with mouse,
	                touch and synthesized key repeat.

A Renderer is three methods over finalized draw lists; custom engines
implement it against their own triangle submission.

# Performance

  - Dirty tracking: layout and geometry re-resolve only when a control
    changed; a static frame skips the whole pass.
  - Draw lists batch by texture and clip rect, pool their buffers
    through sync.Pool, and reuse vertex storage across frames.
  - Style reads are shared; copy-on-write keeps override cost on the
    widget that overrides.
  - Text measurement walks glyph advances without allocating.
*/
package forms
