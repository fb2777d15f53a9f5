// Package fieldstyle describes the look and timing of a material text field.
//
// A [Style] bundles the palette, the metrics, and the transition used when the
// field reacts to its editing signal. [Default] reproduces the stock field:
// red/blue/gray borders, a 64pt box, a placeholder that floats from 16pt to
// 10pt, and a 100ms ease-out transition.
//
// Styles can be loaded from YAML (see [Parse] and [Load]) or derived from the
// current drift theme with [FromTextFieldTheme].
package fieldstyle

import (
	"image/color"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/graphics"
	"golang.org/x/image/colornames"
)

// CurrentAPIVersion is the style document version written by this package.
const CurrentAPIVersion = "v1.0.0"

// Curve names accepted in [TransitionSpec.Curve].
const (
	CurveLinear    = "linear"
	CurveEase      = "ease"
	CurveEaseIn    = "ease-in"
	CurveEaseOut   = "ease-out"
	CurveEaseInOut = "ease-in-out"
)

// Style is the complete presentation configuration of a field.
type Style struct {
	// APIVersion is the semver version of the style document. Empty means
	// CurrentAPIVersion.
	APIVersion string
	Colors     Palette
	Metrics    Metrics
	Transition TransitionSpec
}

// Palette holds the colors the field switches between.
type Palette struct {
	// Error tints the border and placeholder while the field is invalid.
	Error graphics.Color
	// Focus tints the border and placeholder while editing.
	Focus graphics.Color
	// Idle tints the border and placeholder otherwise.
	Idle graphics.Color
	// PlaceholderBackground is the patch drawn behind a floated placeholder.
	PlaceholderBackground graphics.Color
	// Hint colors the hint line.
	Hint graphics.Color
}

// Metrics holds sizes and paddings, in logical points.
type Metrics struct {
	Height                float64 `validate:"gt=0"`
	CornerRadius          float64 `validate:"gte=0"`
	InputPadding          float64 `validate:"gte=0"`
	IdleBorderWidth       float64 `validate:"gte=0"`
	EditingBorderWidth    float64 `validate:"gte=0"`
	RestingFontSize       float64 `validate:"gt=0"`
	FloatingFontSize      float64 `validate:"gt=0"`
	FloatingBottomPadding float64 `validate:"gte=0"`
	LeadingPadding        float64 `validate:"gte=0"`
	InitialLeadingPadding float64 `validate:"gte=0"`
	PlaceholderInset      float64 `validate:"gte=0"`
	HintFontSize          float64 `validate:"gt=0"`
	HintLeadingPadding    float64 `validate:"gte=0"`
}

// TransitionSpec is the easing applied when the editing signal flips.
type TransitionSpec struct {
	Duration time.Duration `validate:"gte=0,lte=10s"`
	Curve    string        `validate:"oneof=linear ease ease-in ease-out ease-in-out"`
}

// Default returns the stock field style.
func Default() Style {
	return Style{
		APIVersion: CurrentAPIVersion,
		Colors: Palette{
			Error:                 fromRGBA(colornames.Red),
			Focus:                 fromRGBA(colornames.Blue),
			Idle:                  fromRGBA(colornames.Gray),
			PlaceholderBackground: fromRGBA(colornames.White),
			Hint:                  fromRGBA(colornames.Gray),
		},
		Metrics: Metrics{
			Height:                64,
			CornerRadius:          4,
			InputPadding:          6,
			IdleBorderWidth:       1,
			EditingBorderWidth:    2,
			RestingFontSize:       16,
			FloatingFontSize:      10,
			FloatingBottomPadding: 34,
			LeadingPadding:        8,
			InitialLeadingPadding: 2,
			PlaceholderInset:      2,
			HintFontSize:          10,
			HintLeadingPadding:    10,
		},
		Transition: TransitionSpec{
			Duration: 100 * time.Millisecond,
			Curve:    CurveEaseOut,
		},
	}
}

// CurveFunc resolves the transition curve name to a drift easing function.
// Unknown names fall back to linear.
func (t TransitionSpec) CurveFunc() func(float64) float64 {
	if fn, ok := curveByName(t.Curve); ok {
		return fn
	}
	return animation.LinearCurve
}

func curveByName(name string) (func(float64) float64, bool) {
	switch name {
	case CurveLinear:
		return animation.LinearCurve, true
	case CurveEase:
		return animation.Ease, true
	case CurveEaseIn:
		return animation.EaseIn, true
	case CurveEaseOut, "":
		return animation.EaseOut, true
	case CurveEaseInOut:
		return animation.EaseInOut, true
	}
	return nil, false
}

func fromRGBA(c color.RGBA) graphics.Color {
	return graphics.RGBA8(c.R, c.G, c.B, c.A)
}
