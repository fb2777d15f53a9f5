package fieldstate

import (
	"github.com/go-drift/materialfield/pkg/binding"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
)

// TextSource is the text the field edits. *platform.TextEditingController
// satisfies it. Listeners may fire without the text changing, for example on
// selection moves.
type TextSource interface {
	Text() string
	AddListener(fn func()) func()
}

// FocusTarget receives focus requests when the editing signal flips.
type FocusTarget interface {
	RequestFocus()
	Unfocus()
}

// Presenter keeps a field's Visual in step with its bindings.
//
// Constructing a Presenter performs no recomputation; the Visual starts at
// [Initial] until the first change arrives. Editing changes move focus and
// recompute with the style's transition. Text and validity changes recompute
// immediately.
type Presenter struct {
	style   fieldstyle.Style
	text    TextSource
	editing *binding.Value[bool]
	valid   *binding.Value[bool]
	focus   FocusTarget

	visual  Visual
	focused Field

	lastText    string
	lastEditing bool
	lastValid   bool

	onChange func(Visual, Transition)
	unsubs   []func()
}

// NewPresenter creates a presenter over the given sources. Any source may be
// nil: a nil text source reads as empty, a nil editing binding as false, and
// a nil valid binding as true. focus may be nil.
func NewPresenter(style fieldstyle.Style, text TextSource, editing, valid *binding.Value[bool], focus FocusTarget) *Presenter {
	p := &Presenter{
		style:   style,
		text:    text,
		editing: editing,
		valid:   valid,
		focus:   focus,
		visual:  Initial(style),
	}
	s := p.Signals()
	p.lastText = s.Text
	p.lastEditing = s.Editing
	p.lastValid = s.Valid
	return p
}

// OnChange sets the callback invoked after every recomputation.
func (p *Presenter) OnChange(fn func(Visual, Transition)) {
	p.onChange = fn
}

// Attach subscribes to the sources and returns a function that removes the
// subscriptions.
func (p *Presenter) Attach() func() {
	if p.text != nil {
		p.unsubs = append(p.unsubs, p.text.AddListener(p.TextChanged))
	}
	p.unsubs = append(p.unsubs,
		p.editing.AddListener(p.EditingChanged),
		p.valid.AddListener(p.ValidChanged),
	)
	return p.Detach
}

// Detach removes all subscriptions made by Attach.
func (p *Presenter) Detach() {
	for _, unsub := range p.unsubs {
		unsub()
	}
	p.unsubs = nil
}

// Signals reads the current value of every source.
func (p *Presenter) Signals() Signals {
	s := Signals{
		Editing: p.editing.Value(),
		Valid:   true,
	}
	if p.valid != nil {
		s.Valid = p.valid.Value()
	}
	if p.text != nil {
		s.Text = p.text.Text()
	}
	return s
}

// Visual returns the last computed presentation.
func (p *Presenter) Visual() Visual {
	return p.visual
}

// Focused returns the focus token last assigned by an editing change.
func (p *Presenter) Focused() Field {
	return p.focused
}

// Style returns the style the presenter derives with.
func (p *Presenter) Style() fieldstyle.Style {
	return p.style
}

// SetStyle replaces the style and recomputes immediately.
func (p *Presenter) SetStyle(style fieldstyle.Style) {
	p.style = style
	p.recompute(Immediate())
}

// EditingChanged handles a notification from the editing binding.
func (p *Presenter) EditingChanged() {
	editing := p.editing.Value()
	if editing == p.lastEditing {
		return
	}
	p.lastEditing = editing
	if editing {
		p.focused = FieldText
		if p.focus != nil {
			p.focus.RequestFocus()
		}
	} else {
		p.focused = FieldNone
		if p.focus != nil {
			p.focus.Unfocus()
		}
	}
	p.recompute(TransitionFor(p.style))
}

// TextChanged handles a notification from the text source. Notifications that
// leave the text unchanged are ignored.
func (p *Presenter) TextChanged() {
	text := p.Signals().Text
	if text == p.lastText {
		return
	}
	p.lastText = text
	p.recompute(Immediate())
}

// ValidChanged handles a notification from the valid binding.
func (p *Presenter) ValidChanged() {
	valid := p.Signals().Valid
	if valid == p.lastValid {
		return
	}
	p.lastValid = valid
	p.recompute(Immediate())
}

func (p *Presenter) recompute(t Transition) {
	p.visual = Derive(p.style, p.Signals())
	if p.onChange != nil {
		p.onChange(p.visual, t)
	}
}
