// Package materialfield provides a Material Design inspired text field with
// an animated border and a floating placeholder.
//
// The field's state lives with the caller: the text in a
// [platform.TextEditingController], the hint, editing and validity flags in
// [binding.Value] instances. The field derives its border and placeholder
// from those values and animates the change whenever editing starts or ends.
//
//	text := platform.NewTextEditingController("")
//	hint := binding.New("We never share your email")
//	editing := binding.New(false)
//	valid := binding.New(true)
//
//	field := materialfield.New(text, "Email", hint, editing, valid).
//	    WithCapitalization(platform.TextCapitalizationNone)
//
// See https://m3.material.io/components/text-fields/overview
package materialfield

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/materialfield/pkg/binding"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
)

// TextField is a single-line text input with a floating placeholder, a
// validity-driven border, and a static hint line beneath.
//
// Flipping Editing moves focus to or away from the field and animates the
// border and placeholder into their new state. Text and validity changes
// apply immediately. Constructing the field never moves focus.
type TextField struct {
	core.StatefulBase

	// Controller holds the field contents.
	Controller *platform.TextEditingController
	// Placeholder is the label that floats above the input once it is active.
	Placeholder string
	// Hint is the static helper line shown beneath the input.
	Hint *binding.Value[string]
	// Editing reports whether the field is in the editing state.
	Editing *binding.Value[bool]
	// Valid reports whether the field contents are valid.
	Valid *binding.Value[bool]
	// Capitalization is the autocapitalization applied during input.
	// [New] defaults it to sentences.
	Capitalization platform.TextCapitalization
	// Style overrides the default colors, metrics and transition.
	// An invalid style is reported and replaced by [fieldstyle.Default].
	Style *fieldstyle.Style

	// OnChanged is called when the user edits the text.
	OnChanged func(string)
	// OnSubmitted is called when the user submits the field.
	OnSubmitted func(string)
	// OnFocusChange is called when the native input gains or loses focus.
	// Assign Editing from it to keep the editing flag in step with taps.
	OnFocusChange func(focused bool)
}

// New creates a text field bound to the given state with sentence
// capitalization.
func New(text *platform.TextEditingController, placeholder string, hint *binding.Value[string], editing, valid *binding.Value[bool]) TextField {
	return TextField{
		Controller:     text,
		Placeholder:    placeholder,
		Hint:           hint,
		Editing:        editing,
		Valid:          valid,
		Capitalization: platform.TextCapitalizationSentences,
	}
}

// Of creates a text field whose palette follows the nearest drift theme.
func Of(ctx core.BuildContext, text *platform.TextEditingController, placeholder string, hint *binding.Value[string], editing, valid *binding.Value[bool]) TextField {
	style := fieldstyle.FromTextFieldTheme(theme.ThemeOf(ctx).TextFieldThemeOf())
	return New(text, placeholder, hint, editing, valid).WithStyle(&style)
}

// WithCapitalization returns a copy of the field with the given
// autocapitalization mode.
func (f TextField) WithCapitalization(c platform.TextCapitalization) TextField {
	f.Capitalization = c
	return f
}

// WithStyle returns a copy of the field with the given style.
func (f TextField) WithStyle(s *fieldstyle.Style) TextField {
	f.Style = s
	return f
}

func (f TextField) CreateState() core.State {
	return &textFieldState{}
}
