// Command export computes one share table from a zones file and writes it as CSV, XLSX or PDF.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/export"
	"simdshare.ubdc.ac.uk/internal/logging"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/internal/simd"
)

func main() {
	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelInfo)

	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_ = logging.ReplaceLogFatal(logger, "export failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("simdshare-export", flag.ContinueOnError)
	fs.SetOutput(stderr)

	zonesPath := fs.String("zones", "./Derived_Data/SIMD_2020_Ranks_and_Domain_Ranks.csv", "Data zone ranks CSV, local path or URL")
	bandFlag := fs.String("band", string(shares.MostDeprived5), "Deprivation band, label or id (most-5, least-20, ...)")
	domain := fs.String("domain", "SIMD2020_Rank", "Rank column to select on")
	shareFlag := fs.String("share", string(shares.LocalShare), "Share the rows are sorted by (local_share|national_share)")
	formatFlag := fs.String("format", string(export.CSV), "Output format (csv|xlsx|pdf)")
	output := fs.String("output", "", "Output file; empty writes to stdout")
	totalZones := fs.Int("total-zones", shares.ReferenceTotalZones, "Data zones the bands are sized from (0 uses the rows loaded)")
	councilColumn := fs.String("council-column", datazone.DefaultColumns().Council, "CSV column holding the council area")

	if err := fs.Parse(args); err != nil {
		return err
	}

	band, err := shares.ParseBand(*bandFlag)
	if err != nil {
		return err
	}
	kind, err := shares.ParseShareKind(*shareFlag)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}

	columns := datazone.DefaultColumns()
	columns.Council = *councilColumn
	table, err := simd.LoadTable(ctx, simd.Config{ZonesPath: *zonesPath, Columns: columns})
	if err != nil {
		return err
	}

	result, err := shares.NewCalculator(table, *totalZones).Calculate(shares.Query{Band: band, Domain: *domain, Kind: kind})
	if err != nil {
		return err
	}

	if *output == "" {
		return export.Write(stdout, format, result)
	}

	if err := writeFile(*output, format, result, logger); err != nil {
		return err
	}

	logging.LogOperation(logger, "share_table_exported",
		slog.String("output", *output),
		slog.String("format", string(format)),
		slog.Int("councils", len(result.Rows)))
	return nil
}

func writeFile(path string, format export.Format, result *shares.Result, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_export_file")

	return export.Write(f, format, result)
}
