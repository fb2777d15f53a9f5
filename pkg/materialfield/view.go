package materialfield

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"
	"github.com/go-drift/materialfield/pkg/animatable"
	"github.com/go-drift/materialfield/pkg/fieldstate"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
)

// fieldView lays out one frame of a text field: the bordered input, the
// floating placeholder over it, and the hint along the bottom edge.
type fieldView struct {
	core.StatelessBase
	field      TextField
	style      fieldstyle.Style
	visual     fieldstate.Visual
	fontSize   float64
	transition fieldstate.Transition
	hint       string
}

func (v fieldView) Build(ctx core.BuildContext) core.Widget {
	return widgets.SizedBox{
		Height: v.style.Metrics.Height,
		Child: widgets.Stack{
			Alignment: layout.AlignmentCenterLeft,
			Children: []core.Widget{
				v.input(),
				v.placeholder(),
				v.hintLine(),
			},
		},
	}
}

func (v fieldView) input() core.Widget {
	m := v.style.Metrics
	return widgets.TextInput{
		Controller:     v.field.Controller,
		Capitalization: v.field.Capitalization,
		Style: graphics.TextStyle{
			FontSize: m.RestingFontSize,
			Color:    graphics.ColorBlack,
		},
		Padding:         layout.EdgeInsetsAll(m.InputPadding),
		BackgroundColor: v.style.Colors.PlaceholderBackground,
		BorderColor:     v.visual.BorderColor,
		FocusColor:      v.visual.BorderColor,
		BorderWidth:     v.visual.BorderWidth,
		BorderRadius:    m.CornerRadius,
		OnChanged:       v.field.OnChanged,
		OnSubmitted:     v.field.OnSubmitted,
		OnFocusChange:   v.field.OnFocusChange,
	}
}

// placeholder is a rounded patch behind the label, so a floated label
// masks the border it sits on. Bottom padding lifts the centered label by
// half its value.
func (v fieldView) placeholder() core.Widget {
	m := v.style.Metrics
	label := animatable.FontSize{
		Size:     v.fontSize,
		Duration: v.transition.Duration,
		Curve:    v.transition.Curve,
		Text: widgets.Text{
			Content: v.field.Placeholder,
			Style:   graphics.TextStyle{Color: v.visual.PlaceholderColor},
		},
	}
	return widgets.Padding{
		Padding: layout.EdgeInsetsOnly(v.visual.PlaceholderLeadingPadding, 0, 0, v.visual.PlaceholderBottomPadding),
		Child: widgets.Stack{
			Alignment: layout.AlignmentCenter,
			Children: []core.Widget{
				widgets.Positioned(widgets.Opacity{
					Opacity: v.visual.PlaceholderBackgroundOpacity,
					Child: widgets.DecoratedBox{
						Color:        v.style.Colors.PlaceholderBackground,
						BorderRadius: m.CornerRadius,
					},
				}).Fill(0),
				widgets.Padding{
					Padding: layout.EdgeInsetsAll(m.PlaceholderInset),
					Child:   label,
				},
			},
		},
	}
}

func (v fieldView) hintLine() core.Widget {
	m := v.style.Metrics
	return widgets.Positioned(widgets.Padding{
		Padding: layout.EdgeInsetsOnly(m.HintLeadingPadding, 0, 0, 0),
		Child: widgets.Text{
			Content: v.hint,
			Style: graphics.TextStyle{
				FontSize: m.HintFontSize,
				Color:    v.style.Colors.Hint,
			},
		},
	}).Left(0).Bottom(0)
}
