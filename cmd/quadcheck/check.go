// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/cubature/harness"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	var (
		configPath  string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check declared degrees of a scheme catalog",
		Long: `Checks every scheme on every domain with maxDegree = declared+1.
Without --config the built-in catalog runs on the standard domains.
Exits non-zero when any observed degree differs from the declared one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &harness.Config{}
			if configPath != "" {
				var err error
				if cfg, err = harness.LoadConfig(configPath); err != nil {
					return err
				}
			}
			cases, err := cfg.Cases()
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, harness.WithLogger(a.logger))
			if concurrency > 0 {
				opts = append(opts, harness.WithConcurrency(concurrency))
			}

			outcomes, runErr := harness.Run(cmd.Context(), cases, opts...)
			if outcomes != nil {
				fmt.Fprintln(cmd.OutOrStdout(), outcomeTable(outcomes))
			}
			return runErr
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML catalog file")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "parallel checks (default GOMAXPROCS or config)")

	return cmd
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true)
)

func outcomeTable(outcomes []harness.Outcome) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SCHEME", "DOMAIN", "POINTS", "DECLARED", "OBSERVED", "STATUS")
	for _, o := range outcomes {
		status := okStyle.Render("ok")
		if !o.OK() {
			status = failStyle.Render("MISMATCH")
		}
		t.Row(
			o.Case.Scheme.Name(),
			o.Case.Domain.Name,
			strconv.Itoa(o.Case.Scheme.Len()),
			strconv.Itoa(o.Declared),
			strconv.Itoa(o.Observed),
			status,
		)
	}

	return t.String()
}
