package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/genesisdiag/internal/economy"
	"github.com/dshills/genesisdiag/internal/render"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the category coefficient table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := io.WriteString(cmd.OutOrStdout(), render.Categories()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newEconomiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "economies",
		Short: "List the built-in economies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomies(cmd.OutOrStdout())
		},
	}
}

func runEconomies(w io.Writer) error {
	names, err := economy.List()
	if err != nil {
		return fmt.Errorf("failed to list economies: %w", err)
	}
	for _, name := range names {
		e, err := economy.LoadBuiltin(name)
		if err != nil {
			return exitError(3, "failed to load economy: %v", err)
		}
		fmt.Fprintf(w, "%-10s %s\n", name, strings.TrimSpace(e.Description))
	}
	return nil
}
