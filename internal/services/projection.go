package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pyconjptalks/internal/domain"
)

// Field spec errors.
var (
	ErrInvalidFieldSpec = errors.New("invalid field spec")
	ErrUnknownField     = errors.New("unknown field")
)

// fieldAliasSeparator separates an attribute from its column header in a field spec.
const fieldAliasSeparator = " AS "

// DefaultTimetableFields is the column layout of the website timetable CSV.
var DefaultTimetableFields = []string{
	"id",
	"title",
	"room",
	"day",
	"start_time",
	"slot_number AS no",
	"elevator_pitch",
	"prior_knowledge AS prerequisite_knowledge",
	"take_away AS audience_takeaway",
	"level AS audience_python_level",
	"track",
	"speaking_language AS lang_of_talk",
	"slide_language AS lang_of_slide",
	"description",
	"duration_min",
	"slide_url",
	"recording_url",
	"speaker_names AS name",
	"speaker_profiles AS profile",
}

type fieldAccessor func(domain.ScheduledTalk) any

var fieldAccessors = map[string]fieldAccessor{
	"id":                func(t domain.ScheduledTalk) any { return t.ID },
	"title":             func(t domain.ScheduledTalk) any { return t.Title },
	"description":       func(t domain.ScheduledTalk) any { return t.Description },
	"room":              func(t domain.ScheduledTalk) any { return t.Room() },
	"day":               func(t domain.ScheduledTalk) any { return t.Day() },
	"start_time":        func(t domain.ScheduledTalk) any { return t.StartTime() },
	"slot_number":       func(t domain.ScheduledTalk) any { return t.SlotNumber() },
	"duration_min":      func(t domain.ScheduledTalk) any { return t.DurationMin },
	"slide_url":         func(t domain.ScheduledTalk) any { return t.SlideURL },
	"recording_url":     func(t domain.ScheduledTalk) any { return t.RecordingURL },
	"track":             func(t domain.ScheduledTalk) any { return t.Track() },
	"level":             func(t domain.ScheduledTalk) any { return t.Level() },
	"speaking_language": func(t domain.ScheduledTalk) any { return t.SpeakingLanguage() },
	"slide_language":    func(t domain.ScheduledTalk) any { return t.SlideLanguage() },
	"elevator_pitch":    func(t domain.ScheduledTalk) any { return t.ElevatorPitch() },
	"prior_knowledge":   func(t domain.ScheduledTalk) any { return t.PriorKnowledge() },
	"take_away":         func(t domain.ScheduledTalk) any { return t.TakeAway() },
	"speaker_names":     func(t domain.ScheduledTalk) any { return t.SpeakerNames() },
	"speaker_profiles":  func(t domain.ScheduledTalk) any { return t.SpeakerProfiles() },
}

// fieldFormatters post-process specific fields wherever they appear in the projection.
var fieldFormatters = map[string]func(any) any{
	"day": func(v any) any {
		return v.(time.Time).Format("01/02")
	},
	"start_time": func(v any) any {
		return v.(time.Time).Format("15:04")
	},
	// Unnumbered sessions show an empty "no" column.
	"slot_number": func(v any) any {
		if v.(int) == 0 {
			return nil
		}
		return v
	},
	"speaker_names": func(v any) any {
		return strings.Join(v.([]string), ", ")
	},
	"speaker_profiles": func(v any) any {
		profiles := v.([]*string)
		parts := make([]string, len(profiles))
		for i, p := range profiles {
			if p != nil {
				parts[i] = *p
			}
		}
		return strings.Join(parts, "\n\n")
	},
}

// ParseFieldSpecs splits "name" / "name AS alias" specs into attribute names
// and column headers.
func ParseFieldSpecs(specs []string) (fields, headers []string, err error) {
	fields = make([]string, 0, len(specs))
	headers = make([]string, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, fieldAliasSeparator)
		if len(parts) > 2 {
			return nil, nil, fmt.Errorf("%w: %q has more than one %q", ErrInvalidFieldSpec, spec, strings.TrimSpace(fieldAliasSeparator))
		}
		name := parts[0]
		if _, ok := fieldAccessors[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		header := name
		if len(parts) == 2 {
			header = parts[1]
		}
		fields = append(fields, name)
		headers = append(headers, header)
	}
	return fields, headers, nil
}

// Project returns the formatted values of fields for every talk, in collection order.
// fields must come from ParseFieldSpecs.
func Project(talks domain.ScheduledTalks, fields []string) [][]any {
	rows := make([][]any, 0, talks.Len())
	for i := 0; i < talks.Len(); i++ {
		talk := talks.At(i)
		row := make([]any, len(fields))
		for j, field := range fields {
			v := fieldAccessors[field](talk)
			if format, ok := fieldFormatters[field]; ok {
				v = format(v)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// Rows returns the header row followed by one string row per talk.
// Null values become empty cells.
func Rows(talks domain.ScheduledTalks, fields, headers []string) [][]string {
	rows := make([][]string, 0, talks.Len()+1)
	rows = append(rows, append([]string(nil), headers...))
	for _, values := range Project(talks, fields) {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
