// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "quadcheck",
		Short: "Verify and display quadrilateral cubature schemes",
		Long: `quadcheck runs the degree checker over a catalog of cubature schemes:
for every scheme and domain it compares numerical quadrature of x^a·y^b
against the exact integral, degree by degree, and reports the highest
degree integrated exactly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := zapcore.InfoLevel
			if a.verbose {
				level = zapcore.DebugLevel
			}
			a.logger = zap.New(zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(cmd.ErrOrStderr()),
				level))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every checked degree")

	root.AddCommand(a.newCheckCmd(), a.newShowCmd(), a.newListCmd())

	return root
}
