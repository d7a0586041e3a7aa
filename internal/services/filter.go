package services

import (
	"strings"

	"pyconjptalks/internal/domain"
)

// excludedTitlePrefixes mark sessions that are not shown in the timetable:
// booth visit announcements, ask-the-speaker corners and breaks.
var excludedTitlePrefixes = []string{"スペシャルブース訪問", "Ask the speaker", "Break"}

// venueOpenMarker marks the venue open placeholder, which is listed but not numbered.
const venueOpenMarker = "開場"

// IsIncluded reports whether a session with the given title belongs in the timetable.
func IsIncluded(title string) bool {
	for _, prefix := range excludedTitlePrefixes {
		if strings.HasPrefix(title, prefix) {
			return false
		}
	}
	return true
}

// FilterSessions keeps the sessions shown in the timetable, in upstream order.
func FilterSessions(sessions []domain.SessionFetcherSession) []domain.SessionFetcherSession {
	var out []domain.SessionFetcherSession
	for _, s := range sessions {
		if IsIncluded(s.Title) {
			out = append(out, s)
		}
	}
	return out
}

// numberedStarts returns the start times of the sessions that get a slot number.
func numberedStarts(sessions []domain.SessionFetcherSession) []string {
	var starts []string
	for _, s := range sessions {
		if strings.Contains(s.Title, venueOpenMarker) {
			continue
		}
		starts = append(starts, s.StartsAt)
	}
	return starts
}
