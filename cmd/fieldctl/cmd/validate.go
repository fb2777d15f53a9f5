package cmd

import (
	"fmt"

	"github.com/go-drift/materialfield/pkg/fieldstyle"
	"github.com/spf13/cobra"
)

func cmdValidate(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate style files",
		Long: `Load and validate one or more style files.

Validation stops at the first invalid file and exits non-zero.`,
		Example: `  fieldctl validate styles/brand.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				a.log.Debug("validating", "path", path)
				style, err := fieldstyle.Load(path)
				if err != nil {
					return err
				}
				version := style.APIVersion
				if version == "" {
					version = fieldstyle.CurrentAPIVersion
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, version)
			}
			a.log.Info("all styles valid", "count", len(args))
			return nil
		},
	}
}
