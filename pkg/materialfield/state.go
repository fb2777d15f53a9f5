package materialfield

import (
	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/focus"
	"github.com/go-drift/materialfield/pkg/fieldstate"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
)

type textFieldState struct {
	core.StateBase
	style      fieldstyle.Style
	presenter  *fieldstate.Presenter
	controller *animation.AnimationController
	anchor     *focus.FocusNode

	// visualTween runs from the Visual on screen when the last animated
	// transition started to the presenter's target.
	visualTween *animation.Tween[fieldstate.Visual]
	current     fieldstate.Visual
	// transition is the timing of the last change, forwarded to the
	// placeholder font so both move together.
	transition fieldstate.Transition

	unbind func()
}

func (s *textFieldState) InitState() {
	w := s.Element().Widget().(TextField)
	s.style = resolveStyle(w.Style)

	var unregister func()
	s.anchor, unregister = registerFocusAnchor()
	s.OnDispose(unregister)

	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(s.style.Transition.Duration)
		c.Curve = s.style.Transition.CurveFunc()
		return c
	})
	core.UseListenable(s, s.controller)

	s.bind(w)
	s.OnDispose(func() {
		if s.unbind != nil {
			s.unbind()
		}
	})
	s.current = s.presenter.Visual()
}

func (s *textFieldState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(TextField)
	w := s.Element().Widget().(TextField)

	if old.Controller != w.Controller || old.Editing != w.Editing ||
		old.Valid != w.Valid || old.Hint != w.Hint {
		s.unbind()
		s.bind(w)
		s.presenter.SetStyle(s.style)
	}
	if !sameStyle(old.Style, w.Style) {
		if style := resolveStyle(w.Style); style != s.style {
			s.style = style
			s.presenter.SetStyle(style)
		}
	}
}

func sameStyle(a, b *fieldstyle.Style) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// bind creates a presenter over the widget's sources and subscribes to the
// hint.
func (s *textFieldState) bind(w TextField) {
	var text fieldstate.TextSource
	if w.Controller != nil {
		text = w.Controller
	}
	s.presenter = fieldstate.NewPresenter(s.style, text, w.Editing, w.Valid, fieldFocus{anchor: s.anchor})
	s.presenter.OnChange(s.apply)
	detach := s.presenter.Attach()
	unhint := w.Hint.AddListener(func() {
		s.SetState(nil)
	})
	s.unbind = func() {
		detach()
		unhint()
	}
}

// apply runs a presenter change through the animation controller. An
// immediate change during a running transition retargets it instead of
// cutting it short.
func (s *textFieldState) apply(target fieldstate.Visual, t fieldstate.Transition) {
	if !t.Animated() && s.visualTween != nil && s.controller.IsAnimating() {
		s.visualTween.End = target
		s.SetState(nil)
		return
	}
	s.transition = t
	if !t.Animated() {
		s.controller.Stop()
		s.visualTween = nil
		s.current = target
		s.SetState(nil)
		return
	}
	s.visualTween = fieldstate.TweenVisual(s.current, target)
	s.controller.Duration = t.Duration
	if t.Curve != nil {
		s.controller.Curve = t.Curve
	} else {
		s.controller.Curve = animation.LinearCurve
	}
	s.controller.Reset()
	s.controller.Forward()
}

func (s *textFieldState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(TextField)

	if s.visualTween != nil {
		s.current = s.visualTween.Evaluate(s.controller.Value)
	}

	return fieldView{
		field:      w,
		style:      s.style,
		visual:     s.current,
		fontSize:   s.presenter.Visual().PlaceholderFontSize,
		transition: s.transition,
		hint:       w.Hint.Value(),
	}
}

// resolveStyle validates a caller supplied style. Invalid styles are reported
// through the drift error handler and replaced by the default.
func resolveStyle(style *fieldstyle.Style) fieldstyle.Style {
	if style == nil {
		return fieldstyle.Default()
	}
	if err := style.Validate(); err != nil {
		errors.Report(&errors.DriftError{
			Op:   "materialfield.TextField",
			Kind: errors.KindInit,
			Err:  err,
		})
		return fieldstyle.Default()
	}
	return *style
}
