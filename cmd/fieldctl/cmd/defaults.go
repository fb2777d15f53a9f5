package cmd

import (
	"github.com/go-drift/materialfield/pkg/fieldstyle"
	"github.com/spf13/cobra"
)

func cmdDefaults(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default style as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := fieldstyle.Marshal(fieldstyle.Default())
			if err != nil {
				return err
			}
			a.log.Debug("writing default style", "bytes", len(data))
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
