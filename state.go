package forms

import "strings"

// State identifies the visual and interaction state of a control.
// States are bit flags so that they can be combined into a mask when passed
// to themed property setters. A control itself always holds exactly one.
type State uint8

const (
	// StateNormal is the default state of an enabled control.
	StateNormal State = 0x01

	// StateFocus marks the control that currently receives key events.
	StateFocus State = 0x02

	// StateActive marks a control being interacted with, such as a button
	// while it is held down.
	StateActive State = 0x04

	// StateDisabled marks a control that ignores all input.
	StateDisabled State = 0x08

	// StateAll combines all four states. Themed property setters accept it
	// to apply one value to every state at once.
	StateAll = StateNormal | StateFocus | StateActive | StateDisabled
)

// IsSingle returns true if exactly one valid state bit is set.
// Controls hold single states; only setter masks combine them.
func (s State) IsSingle() bool {
	return s != 0 && s&StateAll == s && s&(s-1) == 0
}

// Has returns true if the mask includes the given state bit.
func (s State) Has(state State) bool {
	return s&state != 0
}

// String returns the canonical name of a state, or a pipe-separated list
// for combined masks.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "NORMAL"
	case StateFocus:
		return "FOCUS"
	case StateActive:
		return "ACTIVE"
	case StateDisabled:
		return "DISABLED"
	case StateAll:
		return "ALL"
	case 0:
		return "NONE"
	}
	var parts []string
	for _, bit := range []State{StateNormal, StateFocus, StateActive, StateDisabled} {
		if s&bit != 0 {
			parts = append(parts, bit.String())
		}
	}
	return strings.Join(parts, "|")
}

// ParseState maps a state name from the theme vocabulary (NORMAL, FOCUS,
// ACTIVE, DISABLED, ALL) to its State value. Returns false for unknown names.
func ParseState(name string) (State, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NORMAL":
		return StateNormal, true
	case "FOCUS":
		return StateFocus, true
	case "ACTIVE":
		return StateActive, true
	case "DISABLED":
		return StateDisabled, true
	case "ALL":
		return StateAll, true
	}
	return 0, false
}

// OverlayType indexes the per-state resource bundle inside a Style.
// A style holds exactly one overlay per state.
type OverlayType int

const (
	OverlayNormal OverlayType = iota
	OverlayFocus
	OverlayActive
	OverlayDisabled

	// overlayMax is the number of overlays a style holds.
	overlayMax
)

// String returns a human-readable name for the overlay type.
func (t OverlayType) String() string {
	switch t {
	case OverlayNormal:
		return "Normal"
	case OverlayFocus:
		return "Focus"
	case OverlayActive:
		return "Active"
	case OverlayDisabled:
		return "Disabled"
	}
	return "Unknown"
}

// overlayForState maps a single state to its overlay index.
// Combined masks resolve to OverlayNormal.
func overlayForState(s State) OverlayType {
	switch s {
	case StateFocus:
		return OverlayFocus
	case StateActive:
		return OverlayActive
	case StateDisabled:
		return OverlayDisabled
	}
	return OverlayNormal
}
