package fieldstate

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Transition describes how a batch of property writes reaches the screen.
// A zero Duration applies the writes immediately.
type Transition struct {
	Duration time.Duration
	Curve    func(float64) float64
}

// Immediate returns a transition that applies changes without animating.
func Immediate() Transition {
	return Transition{}
}

// TransitionFor returns the easing transition configured by style.
func TransitionFor(style fieldstyle.Style) Transition {
	return Transition{
		Duration: style.Transition.Duration,
		Curve:    style.Transition.CurveFunc(),
	}
}

// Animated reports whether the transition interpolates over time.
func (t Transition) Animated() bool {
	return t.Duration > 0
}

// LerpVisual interpolates every property of a Visual. Colors are blended in
// CIE-L*a*b* space so red-to-blue passes through a perceptual midpoint rather
// than a muddy RGB average.
func LerpVisual(a, b Visual, t float64) Visual {
	return Visual{
		BorderColor:                  LerpColor(a.BorderColor, b.BorderColor, t),
		BorderWidth:                  animation.LerpFloat64(a.BorderWidth, b.BorderWidth, t),
		PlaceholderBackgroundOpacity: animation.LerpFloat64(a.PlaceholderBackgroundOpacity, b.PlaceholderBackgroundOpacity, t),
		PlaceholderBottomPadding:     animation.LerpFloat64(a.PlaceholderBottomPadding, b.PlaceholderBottomPadding, t),
		PlaceholderColor:             LerpColor(a.PlaceholderColor, b.PlaceholderColor, t),
		PlaceholderFontSize:          animation.LerpFloat64(a.PlaceholderFontSize, b.PlaceholderFontSize, t),
		PlaceholderLeadingPadding:    animation.LerpFloat64(a.PlaceholderLeadingPadding, b.PlaceholderLeadingPadding, t),
	}
}

// TweenVisual creates a tween between two Visuals.
func TweenVisual(begin, end Visual) *animation.Tween[Visual] {
	return &animation.Tween[Visual]{
		Begin: begin,
		End:   end,
		Lerp:  LerpVisual,
	}
}

// LerpColor blends two ARGB colors in L*a*b* space with linear alpha.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	if a == b || t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := animation.LerpFloat64(a.Alpha(), b.Alpha(), t)
	return graphics.RGBA(r, g, bl, alpha)
}

func toColorful(c graphics.Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}
