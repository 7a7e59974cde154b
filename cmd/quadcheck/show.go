// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cubature/harness"
	"github.com/katalvlaran/cubature/plot"
	"github.com/katalvlaran/cubature/scheme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newShowCmd() *cobra.Command {
	var (
		domainName    string
		noColor       bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "show <family> [index]",
		Short: "Draw a scheme mapped onto a standard domain",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := 0
			if len(args) == 2 {
				var err error
				if index, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("show: index %q: %w", args[1], err)
				}
			}
			s, err := scheme.Lookup(args[0], index)
			if err != nil {
				return err
			}
			d, ok := standardDomain(domainName)
			if !ok {
				return fmt.Errorf("show: unknown domain %q", domainName)
			}

			opts := []plot.Option{plot.WithSize(width, height)}
			if noColor {
				opts = append(opts, plot.WithStyles(plot.PlainStyles()))
			}
			a.logger.Debug("rendering", zap.String("scheme", s.Name()), zap.String("domain", d.Name))

			return plot.Show(cmd.OutOrStdout(), d.Quadrilateral(), s, opts...)
		},
	}
	cmd.Flags().StringVarP(&domainName, "domain", "d", "rectangle", "standard domain to draw on")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styling")
	cmd.Flags().IntVar(&width, "width", 48, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 20, "grid height in cells")

	return cmd
}

func standardDomain(name string) (harness.Domain, bool) {
	for _, d := range harness.StandardDomains() {
		if d.Name == name {
			return d, true
		}
	}

	return harness.Domain{}, false
}
