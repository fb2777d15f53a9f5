package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-drift/materialfield/pkg/fieldstate"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
	"github.com/spf13/cobra"
)

var tableHeaders = []string{
	"editing", "valid", "text", "border", "width",
	"placeholder", "font", "background", "bottom", "leading",
}

func cmdTable(a *app) *cobra.Command {
	var stylePath string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the derived visual state for every signal combination",
		Long: `Print the border and placeholder values a field shows for each
combination of editing, valid and empty text.

The style comes from --style, then FIELDCTL_STYLE, then the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stylePath
			if path == "" {
				path = a.env.Style
			}
			style, err := fieldstyle.LoadOptional(path)
			if err != nil {
				return err
			}
			a.log.Debug("rendering table", "style", path)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(style))
			return nil
		},
	}
	cmd.Flags().StringVar(&stylePath, "style", "", "style file to derive with")
	return cmd
}

// signalRows lists every (editing, valid, text) combination.
func signalRows() []fieldstate.Signals {
	var rows []fieldstate.Signals
	for _, editing := range []bool{false, true} {
		for _, valid := range []bool{true, false} {
			for _, text := range []string{"", "abc"} {
				rows = append(rows, fieldstate.Signals{Editing: editing, Valid: valid, Text: text})
			}
		}
	}
	return rows
}

func tableRows(style fieldstyle.Style) [][]string {
	var rows [][]string
	for _, s := range signalRows() {
		v := fieldstate.Derive(style, s)
		text := "empty"
		if s.Text != "" {
			text = strconv.Quote(s.Text)
		}
		rows = append(rows, []string{
			strconv.FormatBool(s.Editing),
			strconv.FormatBool(s.Valid),
			text,
			fieldstyle.FormatColor(v.BorderColor),
			formatFloat(v.BorderWidth),
			fieldstyle.FormatColor(v.PlaceholderColor),
			formatFloat(v.PlaceholderFontSize),
			formatFloat(v.PlaceholderBackgroundOpacity),
			formatFloat(v.PlaceholderBottomPadding),
			formatFloat(v.PlaceholderLeadingPadding),
		})
	}
	return rows
}

func renderTable(style fieldstyle.Style) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Rows(tableRows(style)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
