package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netforge/builder"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the registered models and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range builder.ModelNames() {
				defaults, err := builder.DefaultParams(name)
				if err != nil {
					return err
				}
				pairs := make([]string, 0, len(defaults))
				for _, key := range defaults.Keys() {
					pairs = append(pairs, fmt.Sprintf("%s=%v", key, defaults[key]))
				}
				fmt.Fprintf(out, "%-10s %s\n", name, strings.Join(pairs, " "))
			}

			return nil
		},
	}
}
