package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"pyconjptalks/config"
	"pyconjptalks/internal/adapters/csvexport"
	"pyconjptalks/internal/adapters/sessionize"
	"pyconjptalks/internal/domain"
	"pyconjptalks/internal/services"
)

// dataTypeTimetable is the only export the tool knows so far.
const dataTypeTimetable = "timetable"

var errUnsupportedDataType = errors.New("unsupported data type")

func newRootCmd() *cobra.Command {
	var (
		fields []string
		filter domain.TalkFilter
	)

	cmd := &cobra.Command{
		Use:   "pyconjp-talks <data_type> <output_csv>",
		Short: "Fetch talk data from Sessionize",
		Long: `Fetch the conference schedule from Sessionize and export it as CSV.

The Sessionize endpoint is read from ENDPOINT_ID (a .env file is loaded
outside production).

Examples:
  pyconjp-talks timetable timetable.csv
  pyconjp-talks timetable talks.csv --fields id --fields "slot_number AS no"
  pyconjp-talks timetable web.csv --track "Web programming" --english-only`,
		Args:          cobra.ExactArgs(2),
		ValidArgs:     []string{dataTypeTimetable},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], args[1], fields, filter)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "fields", services.DefaultTimetableFields,
		`column to export, "name" or "name AS header" (repeatable)`)
	cmd.Flags().StringArrayVar(&filter.Tracks, "track", nil, "only talks in this track (repeatable)")
	cmd.Flags().StringArrayVar(&filter.Levels, "level", nil, "only talks for this audience level (repeatable)")
	cmd.Flags().StringArrayVar(&filter.Keywords, "keyword", nil,
		"only talks whose title or answers contain this keyword, case-insensitive (repeatable, all must match)")
	cmd.Flags().BoolVar(&filter.EnglishOnly, "english-only", false,
		"only talks given in English or with slides that are not Japanese only")

	return cmd
}

func runExport(cmd *cobra.Command, dataType, output string, fields []string, filter domain.TalkFilter) error {
	if dataType != dataTypeTimetable {
		return fmt.Errorf("%w: %q (choose from %q)", errUnsupportedDataType, dataType, dataTypeTimetable)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := config.NewLogger(cmd.ErrOrStderr())

	client := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: sessionize.NewLoggingTransport(logger, nil),
	}
	fetcher := sessionize.NewHTTPFetcher(client, cfg.SessionizeBaseURL)
	svc := services.NewTimetableService(fetcher, logger, cfg.HTTPTimeout)

	rows, err := svc.Export(cmd.Context(), cfg.EndpointID, fields, filter)
	if err != nil {
		return err
	}
	if err := csvexport.WriteFile(output, rows); err != nil {
		return err
	}
	logger.Info("timetable exported", "path", output, "rows", len(rows)-1)
	return nil
}
