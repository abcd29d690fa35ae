package forms

import "strings"

// EventType identifies control events as bit flags so that one listener can
// subscribe to several event kinds in a single registration.
type EventType uint8

const (
	// EventPress fires when a contact goes down inside the control's bounds.
	EventPress EventType = 0x01

	// EventRelease fires when a contact that pressed the control goes up.
	EventRelease EventType = 0x02

	// EventClick fires when a press and the matching release both happen
	// inside the control's bounds. Derived by the concrete widget kinds,
	// not by the base dispatch mechanism.
	EventClick EventType = 0x04

	// EventValueChanged fires when a widget's value changes, such as a
	// checkbox toggling or a slider moving.
	EventValueChanged EventType = 0x08

	// EventTextChanged fires when a text box's text changes.
	EventTextChanged EventType = 0x10

	// eventAll is the mask of every defined event flag.
	eventAll = EventPress | EventRelease | EventClick | EventValueChanged | EventTextChanged
)

// String returns a human-readable name for the event type or mask.
func (e EventType) String() string {
	names := []struct {
		bit  EventType
		name string
	}{
		{EventPress, "press"},
		{EventRelease, "release"},
		{EventClick, "click"},
		{EventValueChanged, "valueChanged"},
		{EventTextChanged, "textChanged"},
	}
	var parts []string
	for _, n := range names {
		if e&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Listener receives control events. The widget that produced the event is
// passed so one listener can serve several controls.
//
// Listeners are held by reference and compared by interface identity when
// removed; they do not own the controls they observe.
type Listener interface {
	ControlEvent(w Widget, evt EventType)
}

// listenerFunc adapts a plain function to the Listener interface.
// It is a pointer type so registrations stay comparable for RemoveListener.
type listenerFunc struct {
	fn func(w Widget, evt EventType)
}

func (l *listenerFunc) ControlEvent(w Widget, evt EventType) {
	l.fn(w, evt)
}

// ListenerFunc wraps a function as a Listener. Each call returns a distinct
// value; keep it if the listener must be removed later.
func ListenerFunc(fn func(w Widget, evt EventType)) Listener {
	return &listenerFunc{fn: fn}
}

// listenerRegistry maps event types to ordered listener lists.
// Registration order is notification order.
type listenerRegistry struct {
	listeners map[EventType][]Listener
}

// add registers the listener once per event flag present in the mask.
func (r *listenerRegistry) add(l Listener, events EventType) {
	if r.listeners == nil {
		r.listeners = make(map[EventType][]Listener)
	}
	for bit := EventType(1); bit <= EventTextChanged; bit <<= 1 {
		if events&bit != 0 {
			r.listeners[bit] = append(r.listeners[bit], l)
		}
	}
}

// remove deletes the first identical registration of l under each event flag
// in the mask. Listeners registered under several flags stay registered for
// flags outside the mask.
func (r *listenerRegistry) remove(l Listener, events EventType) {
	for bit := EventType(1); bit <= EventTextChanged; bit <<= 1 {
		if events&bit == 0 {
			continue
		}
		list := r.listeners[bit]
		for i, cur := range list {
			if cur == l {
				r.listeners[bit] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// notify calls every listener registered for exactly this event type,
// synchronously, in registration order.
func (r *listenerRegistry) notify(w Widget, evt EventType) {
	for _, l := range r.listeners[evt] {
		l.ControlEvent(w, evt)
	}
}

// empty returns true if no listener is registered for the event type.
func (r *listenerRegistry) empty(evt EventType) bool {
	return len(r.listeners[evt]) == 0
}
