package main

import (
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"github.com/go-drift/materialfield/pkg/binding"
	"github.com/go-drift/materialfield/pkg/materialfield"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldModel is the caller-owned state behind one field.
type fieldModel struct {
	text    *platform.TextEditingController
	hint    *binding.Value[string]
	editing *binding.Value[bool]
	valid   *binding.Value[bool]

	// check validates the text on each edit. Nil accepts anything.
	check func(string) bool
}

func newFieldModel(text, hint string) fieldModel {
	return fieldModel{
		text:    platform.NewTextEditingController(text),
		hint:    binding.New(hint),
		editing: binding.New(false),
		valid:   binding.New(true),
	}
}

func isEmail(text string) bool {
	return text == "" || validate.Var(text, "email") == nil
}

type fieldsPage struct {
	core.StatefulBase
}

func (fieldsPage) CreateState() core.State {
	return &fieldsState{}
}

type fieldsState struct {
	core.StateBase
	name   fieldModel
	email  fieldModel
	city   fieldModel
	status string
}

func (s *fieldsState) InitState() {
	s.name = newFieldModel("", "As it appears on your card")
	s.email = newFieldModel("", "We never share your email")
	s.email.check = isEmail
	s.city = newFieldModel("Lisbon", "Prefilled, so the label starts floated")
	s.status = "Tap a field or use the buttons below"

	for _, m := range []fieldModel{s.name, s.email, s.city} {
		core.UseController(s, func() *platform.TextEditingController { return m.text })
	}
}

func (s *fieldsState) Build(ctx core.BuildContext) core.Widget {
	colors := theme.ColorsOf(ctx)

	return demoPage(ctx, "Material Field",
		sectionTitle("Plain", colors),
		widgets.VSpace(12),
		s.field(s.name, "Name"),
		widgets.VSpace(24),

		sectionTitle("Validated", colors),
		widgets.VSpace(8),
		widgets.Text{Content: "The border turns red while the address is malformed.", Wrap: true, Style: labelStyle(colors)},
		widgets.VSpace(12),
		s.field(s.email, "Email").
			WithCapitalization(platform.TextCapitalizationNone),
		widgets.VSpace(24),

		sectionTitle("Prefilled", colors),
		widgets.VSpace(12),
		s.field(s.city, "City"),
		widgets.VSpace(24),

		widgets.Row{
			MainAxisAlignment: widgets.MainAxisAlignmentStart,
			MainAxisSize:      widgets.MainAxisSizeMax,
			Children: []core.Widget{
				theme.ButtonOf(ctx, "Edit email", func() { s.toggle(s.email, "email") }),
				widgets.HSpace(12),
				theme.ButtonOf(ctx, "Done", s.endEditing),
			},
		},
		widgets.VSpace(16),
		statusCard(s.status, colors),
	)
}

// field binds a text field to m. Focus taps feed back into the editing flag.
func (s *fieldsState) field(m fieldModel, placeholder string) materialfield.TextField {
	f := materialfield.New(m.text, placeholder, m.hint, m.editing, m.valid)
	f.OnFocusChange = func(focused bool) {
		m.editing.Set(focused)
	}
	f.OnSubmitted = func(text string) {
		m.editing.Set(false)
		s.setStatus(placeholder + " submitted: " + text)
	}
	if m.check != nil {
		f.OnChanged = func(text string) {
			m.valid.Set(m.check(text))
		}
	}
	return f
}

func (s *fieldsState) toggle(m fieldModel, name string) {
	editing := !m.editing.Value()
	m.editing.Set(editing)
	log.Printf("editing %s: %v", name, editing)
	if editing {
		s.setStatus("Editing " + name)
	} else {
		s.setStatus("Stopped editing " + name)
	}
}

func (s *fieldsState) endEditing() {
	for _, m := range []fieldModel{s.name, s.email, s.city} {
		m.editing.Set(false)
	}
	s.setStatus("All fields idle")
}

func (s *fieldsState) setStatus(text string) {
	s.SetState(func() {
		s.status = text
	})
}
