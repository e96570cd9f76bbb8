package main

import (
	"fmt"
	"io"
	"log"

	"github.com/dshills/genesisdiag/internal/diagnosis"
	"github.com/dshills/genesisdiag/internal/economy"
	"github.com/dshills/genesisdiag/internal/render"
	"github.com/spf13/cobra"
)

type diagnoseFlags struct {
	economy string
	verbose bool
}

func newDiagnoseCmd() *cobra.Command {
	f := &diagnoseFlags{}

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Diagnose a built-in economy and print the result table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}
	bindDiagnoseFlags(cmd, f)

	return cmd
}

func bindDiagnoseFlags(cmd *cobra.Command, f *diagnoseFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.economy, "economy", economy.DefaultName, "Built-in economy to diagnose (see the economies command)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
}

func runDiagnose(stdout, stderr io.Writer, f *diagnoseFlags) error {
	logger := log.New(stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	// 1. Load economy
	verbose("Loading economy: %s", f.economy)
	econ, err := economy.LoadBuiltin(f.economy)
	if err != nil {
		return exitError(3, "failed to load economy: %v", err)
	}
	verbose("Loaded %d actors", len(econ.Actors))
	for _, a := range econ.Actors {
		if !a.Type.Valid() {
			verbose("Actor %q has unknown category %q, using defaults", a.Name, a.Type)
		}
	}

	// 2. Diagnose
	rep := diagnosis.Diagnose(econ.Actors)
	verbose("Thermodynamic floor: %v", rep.Floor)
	if rep.Floor <= 0 {
		verbose("Floor is not positive, every value is 0")
	}
	verbose("Diagnosed %d actors", len(rep.Records))

	// 3. Output
	if _, err := io.WriteString(stdout, render.Table(rep.Records)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
