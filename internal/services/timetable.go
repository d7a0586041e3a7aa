package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pyconjptalks/internal/domain"
)

type timetableService struct {
	fetcher        domain.SessionFetcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewTimetableService(fetcher domain.SessionFetcher, logger *slog.Logger, timeout time.Duration) domain.TimetableService {
	if logger == nil {
		logger = slog.Default()
	}
	return &timetableService{
		fetcher:        fetcher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *timetableService) Export(ctx context.Context, endpointID string, fieldSpecs []string, filter domain.TalkFilter) ([][]string, error) {
	// 1. Validate the projection before touching the network
	fields, headers, err := ParseFieldSpecs(fieldSpecs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// 2. Fetch data from Sessionize
	data, err := s.fetcher.Fetch(ctx, endpointID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched sessionize data",
		"sessions", len(data.Sessions),
		"speakers", len(data.Speakers),
		"rooms", len(data.Rooms),
	)

	// 3. Normalize and order
	talks, err := CreateTalksFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to build timetable: %w", err)
	}
	talks = talks.Sorted()
	built := talks.Len()

	// 4. Narrow down to the requested talks
	if !filter.IsZero() {
		talks = talks.FilterBy(filter)
		s.logger.Debug("timetable filtered",
			"tracks", filter.Tracks,
			"levels", filter.Levels,
			"keywords", filter.Keywords,
			"english_only", filter.EnglishOnly,
			"matched", talks.Len(),
		)
	}

	s.logger.Info("timetable built",
		"talks", talks.Len(),
		"excluded", len(data.Sessions)-built,
		"filtered_out", built-talks.Len(),
		"columns", len(fields),
	)
	return Rows(talks, fields, headers), nil
}
