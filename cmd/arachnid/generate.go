package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"arachnid/internal/dataset"
)

func newGenerateCmd() *cobra.Command {
	var (
		outDir  string
		flights bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the seeded datasets to disk",
		Long: "generate builds the surveillance and weapon datasets from their fixed\n" +
			"seeds and writes them as JSON fixtures. With --flights it also writes\n" +
			"the flight manifest SQLite database.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(outDir, flights)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".data", "output directory for the generated fixtures")
	cmd.Flags().BoolVar(&flights, "flights", false, "also write the flight manifest database")
	return cmd
}

func runGenerate(outDir string, flights bool) error {
	store := dataset.Generate()
	if err := store.Validate(); err != nil {
		return fmt.Errorf("generated dataset invalid: %w", err)
	}
	if err := store.Write(outDir); err != nil {
		return fmt.Errorf("write fixtures: %w", err)
	}
	log.Printf("wrote %s and %s to %s", dataset.SurveillanceFile, dataset.WeaponsFile, outDir)

	if flights {
		dbPath := filepath.Join(outDir, dataset.FlightsFile)
		if err := dataset.GenerateFlights(dbPath); err != nil {
			return fmt.Errorf("write flight manifest: %w", err)
		}
		log.Printf("wrote flight manifest to %s", dbPath)
	}
	return nil
}
