package domain

import (
	"slices"
	"strings"
)

// English-only filtering compares against these Sessionize category item names.
const (
	languageEnglish           = "English"
	slideLanguageJapaneseOnly = "Japanese only"
)

// TalkFilter narrows a timetable down to the talks a visitor asked for.
// Empty fields do not filter.
type TalkFilter struct {
	Tracks []string
	Levels []string
	// Keywords must all appear, case-insensitively, in the title, elevator
	// pitch, prior knowledge or take-away.
	Keywords []string
	// EnglishOnly keeps talks given in English or with slides that are not
	// Japanese only.
	EnglishOnly bool
}

// IsZero reports whether f keeps every talk.
func (f TalkFilter) IsZero() bool {
	return len(f.Tracks) == 0 && len(f.Levels) == 0 && len(f.Keywords) == 0 && !f.EnglishOnly
}

// Match reports whether t passes every condition of f. Service sessions have
// no category, so they never match a track or level condition.
func (f TalkFilter) Match(t ScheduledTalk) bool {
	if len(f.Tracks) > 0 && !containsValue(f.Tracks, t.Track()) {
		return false
	}
	if len(f.Levels) > 0 && !containsValue(f.Levels, t.Level()) {
		return false
	}
	if len(f.Keywords) > 0 {
		text := strings.ToLower(strings.Join([]string{
			t.Title,
			valueOrEmpty(t.ElevatorPitch()),
			valueOrEmpty(t.PriorKnowledge()),
			valueOrEmpty(t.TakeAway()),
		}, "\n"))
		for _, keyword := range f.Keywords {
			if !strings.Contains(text, strings.ToLower(keyword)) {
				return false
			}
		}
	}
	if f.EnglishOnly {
		english := valueOrEmpty(t.SpeakingLanguage()) == languageEnglish
		// A talk without a slide language tag counts as not Japanese only.
		japaneseSlides := valueOrEmpty(t.SlideLanguage()) == slideLanguageJapaneseOnly
		if !english && japaneseSlides {
			return false
		}
	}
	return true
}

// FilterBy returns the talks matching f as a new collection, keeping order.
func (c ScheduledTalks) FilterBy(f TalkFilter) ScheduledTalks {
	talks := make([]ScheduledTalk, 0, len(c.talks))
	for _, t := range c.talks {
		if f.Match(t) {
			talks = append(talks, t)
		}
	}
	return ScheduledTalks{talks: talks}
}

func containsValue(values []string, v *string) bool {
	return v != nil && slices.Contains(values, *v)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
