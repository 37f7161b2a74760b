package components

import "github.com/abhisek/ieltsprep/internal/ui/theme"

// Button is a label styled as a button. It has no behaviour; the owning
// screen binds Key.
type Button struct {
	Label  string
	Key    string
	Active bool
}

func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

func (b Button) View() string {
	style := theme.ButtonInactive
	if b.Active {
		style = theme.ButtonActive
	}
	if b.Key == "" {
		return style.Render(b.Label)
	}
	return style.Render(b.Label + "  [" + b.Key + "]")
}
