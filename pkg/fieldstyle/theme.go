package fieldstyle

import "github.com/go-drift/drift/pkg/theme"

// FromTextFieldTheme returns [Default] with its palette taken from a drift
// text field theme. Zero theme colors keep the default color.
func FromTextFieldTheme(th theme.TextFieldThemeData) Style {
	s := Default()
	if th.ErrorColor != 0 {
		s.Colors.Error = th.ErrorColor
	}
	if th.FocusColor != 0 {
		s.Colors.Focus = th.FocusColor
	}
	if th.BorderColor != 0 {
		s.Colors.Idle = th.BorderColor
	}
	if th.BackgroundColor != 0 {
		s.Colors.PlaceholderBackground = th.BackgroundColor
	}
	if th.LabelColor != 0 {
		s.Colors.Hint = th.LabelColor
	}
	return s
}
