// Package animatable provides decorators that interpolate a single visual
// property of their child when that property changes.
package animatable

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/widgets"
)

// FontSize displays Text at Size, animating from the previous size whenever
// Size changes.
//
// The first build shows Size directly. A change that arrives while a previous
// change is still animating starts from the size currently on screen. A zero
// Duration applies changes immediately.
//
// Example:
//
//	animatable.FontSize{
//	    Size:     s.floating ? 10 : 16,
//	    Duration: 100 * time.Millisecond,
//	    Curve:    animation.EaseOut,
//	    Text:     widgets.Text{Content: "Email"},
//	}
type FontSize struct {
	core.StatefulBase

	// Size is the target font size. It overrides Text.Style.FontSize.
	Size float64
	// Duration is the length of the interpolation.
	Duration time.Duration
	// Curve transforms the animation progress. If nil, uses linear interpolation.
	Curve func(float64) float64
	// OnEnd is called when an interpolation completes.
	OnEnd func()

	// Text is the text element whose size is animated.
	Text widgets.Text
}

// Font returns a FontSize decorator that applies size to text without
// animating until a transition is set with [FontSize.WithTransition].
func Font(text widgets.Text, size float64) FontSize {
	return FontSize{Size: size, Text: text}
}

// WithTransition returns a copy of f that animates size changes over d.
func (f FontSize) WithTransition(d time.Duration, curve func(float64) float64) FontSize {
	f.Duration = d
	f.Curve = curve
	return f
}

func (f FontSize) CreateState() core.State {
	return &fontSizeState{}
}

type fontSizeState struct {
	core.StateBase
	controller  *animation.AnimationController
	sizeTween   *animation.Tween[float64]
	currentSize float64
}

func (s *fontSizeState) InitState() {
	w := s.Element().Widget().(FontSize)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(w.Duration)
		if w.Curve != nil {
			c.Curve = w.Curve
		}
		return c
	})
	core.UseListenable(s, s.controller)

	s.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			w := s.Element().Widget().(FontSize)
			if w.OnEnd != nil {
				w.OnEnd()
			}
		}
	})

	s.currentSize = w.Size
}

func (s *fontSizeState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(FontSize)
	w := s.Element().Widget().(FontSize)

	s.controller.Duration = w.Duration
	if w.Curve != nil {
		s.controller.Curve = w.Curve
	} else {
		s.controller.Curve = animation.LinearCurve
	}

	if old.Size == w.Size {
		return
	}
	if w.Duration <= 0 {
		s.controller.Stop()
		s.sizeTween = nil
		s.currentSize = w.Size
		return
	}
	s.sizeTween = animation.TweenFloat64(s.currentSize, w.Size)
	s.controller.Reset()
	s.controller.Forward()
}

func (s *fontSizeState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(FontSize)

	if s.sizeTween != nil {
		s.currentSize = s.sizeTween.Evaluate(s.controller.Value)
	} else {
		s.currentSize = w.Size
	}

	text := w.Text
	text.Style.FontSize = s.currentSize
	return text
}
