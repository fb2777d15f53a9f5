// Package fieldstate derives the presentation of a material text field from
// its three input signals: whether the field is being edited, whether its
// content is valid, and whether it holds any text.
//
// The derivation is pure: [Derive] maps [Signals] to a [Visual] for a given
// style. [Presenter] wires the derivation to live bindings, moves focus when
// the editing signal flips, and reports each recomputed Visual together with
// the [Transition] it should be applied with.
package fieldstate

import (
	"fmt"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
)

// Signals is a snapshot of the externally owned field state.
type Signals struct {
	Editing bool
	Valid   bool
	Text    string
}

// Active reports whether the placeholder floats: the field is being edited
// or already holds text.
func (s Signals) Active() bool {
	return s.Editing || s.Text != ""
}

// Visual is the derived presentation of the field.
type Visual struct {
	BorderColor                  graphics.Color
	BorderWidth                  float64
	PlaceholderBackgroundOpacity float64
	PlaceholderBottomPadding     float64
	PlaceholderColor             graphics.Color
	PlaceholderFontSize          float64
	PlaceholderLeadingPadding    float64
}

// Initial returns the presentation a field shows before any recomputation.
// It matches an idle, valid, empty field except for the leading padding,
// which starts at the style's initial value.
func Initial(style fieldstyle.Style) Visual {
	return Visual{
		BorderColor:                  style.Colors.Idle,
		BorderWidth:                  style.Metrics.IdleBorderWidth,
		PlaceholderBackgroundOpacity: 0,
		PlaceholderBottomPadding:     0,
		PlaceholderColor:             style.Colors.Idle,
		PlaceholderFontSize:          style.Metrics.RestingFontSize,
		PlaceholderLeadingPadding:    style.Metrics.InitialLeadingPadding,
	}
}

// Derive computes the full presentation for s.
func Derive(style fieldstyle.Style, s Signals) Visual {
	var v Visual
	v.BorderColor = BorderColor(style, s)
	v.BorderWidth = BorderWidth(style, s)
	v.PlaceholderBackgroundOpacity = PlaceholderBackgroundOpacity(s)
	v.PlaceholderColor = PlaceholderColor(style, s)
	v.PlaceholderFontSize = PlaceholderFontSize(style, s)
	v.PlaceholderBottomPadding, v.PlaceholderLeadingPadding = PlaceholderPosition(style, s)
	return v
}

// BorderColor is the error color while invalid, the focus color while
// editing, and the idle color otherwise.
func BorderColor(style fieldstyle.Style, s Signals) graphics.Color {
	if !s.Valid {
		return style.Colors.Error
	} else if s.Editing {
		return style.Colors.Focus
	}
	return style.Colors.Idle
}

// BorderWidth is thicker while editing.
func BorderWidth(style fieldstyle.Style, s Signals) float64 {
	if s.Editing {
		return style.Metrics.EditingBorderWidth
	}
	return style.Metrics.IdleBorderWidth
}

// PlaceholderBackgroundOpacity shows the patch behind a floated placeholder.
func PlaceholderBackgroundOpacity(s Signals) float64 {
	if s.Active() {
		return 1
	}
	return 0
}

// PlaceholderColor resolves validity first. A valid field is tinted by the
// editing state alone. An invalid empty field turns red only while editing;
// an invalid field with text is always red.
func PlaceholderColor(style fieldstyle.Style, s Signals) graphics.Color {
	if s.Valid {
		if s.Editing {
			return style.Colors.Focus
		}
		return style.Colors.Idle
	} else if s.Text == "" {
		if s.Editing {
			return style.Colors.Error
		}
		return style.Colors.Idle
	}
	return style.Colors.Error
}

// PlaceholderFontSize shrinks the placeholder when it floats.
func PlaceholderFontSize(style fieldstyle.Style, s Signals) float64 {
	if s.Active() {
		return style.Metrics.FloatingFontSize
	}
	return style.Metrics.RestingFontSize
}

// PlaceholderPosition returns the bottom and leading padding of the
// placeholder. The leading padding is the same in both states.
func PlaceholderPosition(style fieldstyle.Style, s Signals) (bottom, leading float64) {
	if s.Active() {
		return style.Metrics.FloatingBottomPadding, style.Metrics.LeadingPadding
	}
	return 0, style.Metrics.LeadingPadding
}

// Field identifies the focusable element of the text field.
type Field int

const (
	// FieldNone means no element of the field holds focus.
	FieldNone Field = iota
	// FieldText is the text input.
	FieldText
)

// String returns a human-readable representation of the field token.
func (f Field) String() string {
	switch f {
	case FieldNone:
		return "none"
	case FieldText:
		return "textField"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}
