package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finwise-app/finwise/internal/bank"
	"github.com/finwise-app/finwise/internal/logger"
	"github.com/finwise-app/finwise/internal/pipeline"
)

// normalize runs the statement pipeline offline: one CSV or XLSX file in,
// the canonical transaction set as JSON on stdout.
func main() {
	var (
		bankID = flag.String("bank", "", "bank identifier (sbi, kotak, axis); empty uses the generic profile")
		file   = flag.String("file", "", "path to the statement file (.csv or .xlsx)")
	)
	flag.Parse()

	log := logger.New()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: normalize -file statement.csv [-bank sbi|kotak|axis]")
		fmt.Fprintf(os.Stderr, "Supported banks: %s\n", strings.Join(bank.IDs(), ", "))
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to open statement")
	}
	defer f.Close()

	profile := bank.Lookup(*bankID)

	table, err := pipeline.ReadTable(f, *file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to read statement")
	}

	set, report, err := pipeline.Normalize(table, profile)
	if err != nil {
		log.Fatal().Err(err).Str("bank", profile.ID).Msg("Normalization failed")
	}

	log.Info().
		Str("bank", profile.ID).
		Int("raw_rows", report.RawRows).
		Int("kept", report.Kept).
		Int("dropped_amount", report.DroppedAmount).
		Int("dropped_date", report.DroppedDate).
		Msg("Statement normalized")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
}
