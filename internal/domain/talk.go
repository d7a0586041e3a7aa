package domain

import (
	"cmp"
	"slices"
	"time"
)

// ScheduledTalk is one row of the timetable: a Sessionize session with its
// references resolved and its slot computed.
// Category and Answer are nil and Speakers is empty for service sessions.
type ScheduledTalk struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Category     *Category       `json:"category"`
	Answer       *QuestionAnswer `json:"answer"`
	Speakers     []Speaker       `json:"speakers"`
	Slot         Slot            `json:"slot"`
	DurationMin  int             `json:"duration_min"`
	SlideURL     *string         `json:"slide_url"`
	RecordingURL *string         `json:"recording_url"`
}

func (t ScheduledTalk) Room() string         { return t.Slot.Room }
func (t ScheduledTalk) Day() time.Time       { return t.Slot.Day }
func (t ScheduledTalk) StartTime() time.Time { return t.Slot.Start }
func (t ScheduledTalk) SlotNumber() int      { return t.Slot.Number }

func (t ScheduledTalk) Track() *string {
	if t.Category == nil {
		return nil
	}
	return t.Category.Track
}

func (t ScheduledTalk) Level() *string {
	if t.Category == nil {
		return nil
	}
	return t.Category.Level
}

func (t ScheduledTalk) SpeakingLanguage() *string {
	if t.Category == nil {
		return nil
	}
	return t.Category.SpeakingLanguage
}

func (t ScheduledTalk) SlideLanguage() *string {
	if t.Category == nil {
		return nil
	}
	return t.Category.SlideLanguage
}

func (t ScheduledTalk) ElevatorPitch() *string {
	if t.Answer == nil {
		return nil
	}
	return t.Answer.ElevatorPitch
}

func (t ScheduledTalk) PriorKnowledge() *string {
	if t.Answer == nil {
		return nil
	}
	return t.Answer.PriorKnowledge
}

func (t ScheduledTalk) TakeAway() *string {
	if t.Answer == nil {
		return nil
	}
	return t.Answer.TakeAway
}

// SpeakerNames returns the speaker names in upstream order.
func (t ScheduledTalk) SpeakerNames() []string {
	names := make([]string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		names = append(names, s.Name)
	}
	return names
}

// SpeakerProfiles returns the speaker profiles in upstream order; entries may be nil.
func (t ScheduledTalk) SpeakerProfiles() []*string {
	profiles := make([]*string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		profiles = append(profiles, s.Profile)
	}
	return profiles
}

// ScheduledTalks is an ordered collection of talks.
type ScheduledTalks struct {
	talks []ScheduledTalk
}

// NewScheduledTalks wraps talks. The slice is copied.
func NewScheduledTalks(talks []ScheduledTalk) ScheduledTalks {
	return ScheduledTalks{talks: slices.Clone(talks)}
}

func (c ScheduledTalks) Len() int               { return len(c.talks) }
func (c ScheduledTalks) At(i int) ScheduledTalk { return c.talks[i] }
func (c ScheduledTalks) All() []ScheduledTalk   { return slices.Clone(c.talks) }

// Slice returns the talks in [i, j) as a new collection.
func (c ScheduledTalks) Slice(i, j int) ScheduledTalks {
	return NewScheduledTalks(c.talks[i:j])
}

// Sorted returns a new collection ordered by day, slot number and room name.
// Talks with equal keys keep their relative order.
func (c ScheduledTalks) Sorted() ScheduledTalks {
	talks := slices.Clone(c.talks)
	slices.SortStableFunc(talks, func(a, b ScheduledTalk) int {
		if n := a.Day().Compare(b.Day()); n != 0 {
			return n
		}
		if n := cmp.Compare(a.SlotNumber(), b.SlotNumber()); n != 0 {
			return n
		}
		return cmp.Compare(a.Room(), b.Room())
	})
	return ScheduledTalks{talks: talks}
}
