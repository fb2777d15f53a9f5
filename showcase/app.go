// Package main provides the materialfield demo application.
// It shows the field bound to caller-owned state in each of its states.
package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
)

// App returns the root widget for the materialfield demo.
func App() core.Widget {
	data := theme.DefaultLightTheme()
	engine.SetBackgroundColor(graphics.Color(data.ColorScheme.Background))
	surface := data.ColorScheme.Surface
	_ = platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarStyle:  platform.StatusBarStyleDark,
		BackgroundColor: &surface,
		Transparent:     true,
	})

	return theme.Theme{
		Data:  data,
		Child: fieldsPage{},
	}
}
