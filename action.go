package forms

// ActionHandler runs when its action's key chord is pressed.
type ActionHandler func()

// ActionCondition gates an action at dispatch time. A nil condition always
// passes.
type ActionCondition func() bool

// Action binds a key chord to a handler on a form. Actions see only key
// presses the focused widget declined, so a text box being typed into
// shadows every shortcut until editing ends. Bound chords take precedence
// over focus navigation.
type Action struct {
	Name      string // Identifies the action for UnregisterAction
	Key       Key
	Mods      Mods // Must match the event exactly; ModCtrl|ModShift needs both held
	Handler   ActionHandler
	Condition ActionCondition
}

// actionRegistry dispatches key chords to registered actions in
// registration order. The first match wins.
type actionRegistry struct {
	actions []Action
}

func (r *actionRegistry) handle(evt KeyEvent) bool {
	if evt.Kind != KeyEventPress {
		return false
	}
	for i := range r.actions {
		a := &r.actions[i]
		if a.Key != evt.Key || a.Mods != evt.Mods {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}
		a.Handler()
		return true
	}
	return false
}

// RegisterAction adds a form-wide keyboard shortcut. Registering an action
// without a handler or key is a contract violation.
//
//	form.RegisterAction(forms.Action{
//	    Name:    "toggle-hud",
//	    Key:     forms.KeyT,
//	    Handler: func() { hud.SetVisible(!hud.Visible()) },
//	})
func (f *Form) RegisterAction(a Action) {
	if a.Handler == nil {
		contractViolationf("action %q has no handler", a.Name)
		return
	}
	if a.Key == KeyNone {
		contractViolationf("action %q has no key", a.Name)
		return
	}
	f.actions.actions = append(f.actions.actions, a)
}

// UnregisterAction removes the first action registered under the name.
// Reports whether one was found.
func (f *Form) UnregisterAction(name string) bool {
	for i, a := range f.actions.actions {
		if a.Name == name {
			f.actions.actions = append(f.actions.actions[:i:i], f.actions.actions[i+1:]...)
			return true
		}
	}
	return false
}

// ClearActions removes every registered action.
func (f *Form) ClearActions() {
	f.actions.actions = f.actions.actions[:0]
}
