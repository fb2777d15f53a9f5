// Package cmd implements the fieldctl commands.
//
// The root command loads environment configuration and sets up logging, then
// dispatches to subcommands.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by every subcommand once the root pre-run hook has
// loaded it.
type app struct {
	env Env
	log *log.Logger
}

// New returns the fieldctl root command.
func New() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:               "fieldctl",
		Short:             "Inspect and validate material text field styles",
		Version:           fmt.Sprintf("%s (built %s)", Version, BuildTime),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := LoadEnv()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), env.LogLevel)
			if err != nil {
				return err
			}
			a.env = env
			a.log = logger
			return nil
		},
	}

	cmd.AddCommand(
		cmdValidate(a),
		cmdTable(a),
		cmdDefaults(a),
		cmdDocs(a),
	)
	return cmd
}

// Execute runs cmd and logs a failure before returning it.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		log.New(cmd.ErrOrStderr()).Error(err.Error())
	}
	return err
}
