package domain

import "context"

// TimetableService defines the business logic for exporting the timetable.
type TimetableService interface {
	// Export fetches the Sessionize snapshot of endpointID and returns the
	// header row followed by one row per talk matching filter, ordered by day,
	// slot and room.
	Export(ctx context.Context, endpointID string, fieldSpecs []string, filter TalkFilter) ([][]string, error)
}
