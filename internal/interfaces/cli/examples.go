package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolScreen/internal/application/screening"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example molecules",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ex := range screening.ExampleMolecules() {
				fmt.Fprintf(out, "%-14s %s\n", ex.Name, ex.SMILES)
				if ex.Description != "" {
					fmt.Fprintf(out, "%-14s %s\n", "", ex.Description)
				}
			}
			return nil
		},
	}
}
