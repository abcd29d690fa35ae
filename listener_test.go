package forms_test

import (
	"testing"

	"github.com/go-theft-auto/forms"
)

func TestListenerNotifyOrder(t *testing.T) {
	b := forms.NewButton("b")
	var order []string
	b.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		order = append(order, "first")
	}), forms.EventClick)
	b.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		order = append(order, "second")
	}), forms.EventClick)

	b.NotifyListeners(forms.EventClick)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected registration order, got %v", order)
	}
}

func TestListenerMaskFiltering(t *testing.T) {
	b := forms.NewButton("b")
	var events []forms.EventType
	b.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		if w != b {
			t.Errorf("expected the button as event source")
		}
		events = append(events, evt)
	}), forms.EventPress|forms.EventRelease)

	b.NotifyListeners(forms.EventClick)
	b.NotifyListeners(forms.EventPress)
	b.NotifyListeners(forms.EventRelease)

	if len(events) != 2 || events[0] != forms.EventPress || events[1] != forms.EventRelease {
		t.Errorf("expected only the masked events, got %v", events)
	}
}

func TestListenerRemovePerFlag(t *testing.T) {
	b := forms.NewButton("b")
	var count int
	l := forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) { count++ })
	b.AddListener(l, forms.EventPress|forms.EventClick)

	b.RemoveListener(l, forms.EventClick)
	b.NotifyListeners(forms.EventClick)
	b.NotifyListeners(forms.EventPress)
	if count != 1 {
		t.Errorf("expected the press registration to survive, got %d calls", count)
	}

	b.RemoveListener(l, forms.EventPress)
	b.NotifyListeners(forms.EventPress)
	if count != 1 {
		t.Errorf("expected no calls after full removal, got %d", count)
	}
}

func TestListenerRemoveFirstIdentical(t *testing.T) {
	b := forms.NewButton("b")
	var count int
	l := forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) { count++ })
	b.AddListener(l, forms.EventClick)
	b.AddListener(l, forms.EventClick)

	b.NotifyListeners(forms.EventClick)
	if count != 2 {
		t.Fatalf("expected both registrations to fire, got %d", count)
	}

	b.RemoveListener(l, forms.EventClick)
	count = 0
	b.NotifyListeners(forms.EventClick)
	if count != 1 {
		t.Errorf("expected one registration left, got %d", count)
	}
}

func TestListenerFuncIdentity(t *testing.T) {
	b := forms.NewButton("b")
	var count int
	fn := func(w forms.Widget, evt forms.EventType) { count++ }
	l1 := forms.ListenerFunc(fn)
	l2 := forms.ListenerFunc(fn)
	b.AddListener(l1, forms.EventClick)
	b.AddListener(l2, forms.EventClick)

	b.RemoveListener(l1, forms.EventClick)
	b.NotifyListeners(forms.EventClick)
	if count != 1 {
		t.Errorf("each ListenerFunc wrap is its own identity, got %d calls", count)
	}
}

func TestListenerButtonEventSequence(t *testing.T) {
	f := bareForm(200, 200)
	b := forms.NewButton("b", forms.WithBounds(10, 10, 80, 30))
	var events []forms.EventType
	b.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		events = append(events, evt)
	}), forms.EventPress|forms.EventRelease|forms.EventClick)
	f.AddControl(b)
	f.Update(0)

	click(f, 20, 20)

	want := []forms.EventType{forms.EventPress, forms.EventRelease, forms.EventClick}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], events[i])
		}
	}
}
