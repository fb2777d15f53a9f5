package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// sectionTitle creates a styled section header for demo pages.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Text{
		Content: text,
		Style: graphics.TextStyle{
			Color:      colors.Primary,
			FontSize:   20,
			FontWeight: graphics.FontWeightBold,
		},
	}
}

// labelStyle returns a text style for descriptive labels.
func labelStyle(colors theme.ColorScheme) graphics.TextStyle {
	return graphics.TextStyle{
		Color:    colors.OnSurfaceVariant,
		FontSize: 14,
	}
}

// statusCard creates a styled status message card.
func statusCard(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Container{
		Color:        colors.SurfaceVariant,
		BorderRadius: 8,
		Child: widgets.PaddingAll(12,
			widgets.Text{Content: text, Style: graphics.TextStyle{
				Color:    colors.OnSurfaceVariant,
				FontSize: 14,
			}},
		),
	}
}

// demoPage creates a page with a title header above a scrolling column.
func demoPage(ctx core.BuildContext, title string, items ...core.Widget) core.Widget {
	colors := theme.ColorsOf(ctx)
	headerPadding := widgets.SafeAreaPadding(ctx).OnlyTop().Add(16)

	return widgets.Container{
		Color: colors.Background,
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children: []core.Widget{
				widgets.Container{
					Color: colors.Surface,
					Child: widgets.Padding{
						Padding: headerPadding,
						Child: widgets.Text{Content: title, Style: graphics.TextStyle{
							Color:      colors.OnSurface,
							FontSize:   24,
							FontWeight: graphics.FontWeightBold,
						}},
					},
				},
				widgets.Expanded{Child: widgets.ScrollView{
					ScrollDirection: widgets.AxisVertical,
					Physics:         widgets.BouncingScrollPhysics{},
					Padding:         layout.EdgeInsetsAll(20),
					Child: widgets.Column{
						MainAxisAlignment:  widgets.MainAxisAlignmentStart,
						CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
						MainAxisSize:       widgets.MainAxisSizeMin,
						Children:           items,
					},
				}},
			},
		},
	}
}
