// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/cubature/harness"
	"github.com/katalvlaran/cubature/scheme"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheme families, the built-in catalog and standard domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Families:")
			for _, f := range scheme.Families() {
				fmt.Fprintf(w, "  %-22s %s\n", f.Name, f.Usage)
			}

			cat, err := harness.Catalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Catalog:")
			for _, s := range cat {
				fmt.Fprintf(w, "  %s\n", s)
			}

			fmt.Fprintln(w, "Domains:")
			for _, d := range harness.StandardDomains() {
				fmt.Fprintf(w, "  %-14s %v\n", d.Name, d.Quadrilateral())
			}
			return nil
		},
	}
}
