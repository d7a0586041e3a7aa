package services

import (
	"fmt"
	"time"

	"pyconjptalks/internal/domain"
)

// ScheduledTalkFactory assembles timetable talks from Sessionize sessions.
type ScheduledTalkFactory struct {
	categories *CategoryResolver
	answers    *QuestionAnswerResolver
	speakers   *SpeakerResolver
	slots      *SlotResolver
}

func NewScheduledTalkFactory(categories *CategoryResolver, answers *QuestionAnswerResolver, speakers *SpeakerResolver, slots *SlotResolver) *ScheduledTalkFactory {
	return &ScheduledTalkFactory{
		categories: categories,
		answers:    answers,
		speakers:   speakers,
		slots:      slots,
	}
}

// CalculateDurationMin returns the whole minutes from start to end.
// Only the time-of-day difference counts: an end before the start wraps
// around midnight, so the result is never negative.
func CalculateDurationMin(start, end string) (int, error) {
	startAt, err := domain.ParseSessionizeDateTime(start)
	if err != nil {
		return 0, err
	}
	endAt, err := domain.ParseSessionizeDateTime(end)
	if err != nil {
		return 0, err
	}
	d := endAt.Sub(startAt) % (24 * time.Hour)
	if d < 0 {
		d += 24 * time.Hour
	}
	return int(d / time.Minute), nil
}

func (f *ScheduledTalkFactory) Create(session domain.SessionFetcherSession) (domain.ScheduledTalk, error) {
	slot, err := f.slots.Create(session.StartsAt, session.RoomID)
	if err != nil {
		return domain.ScheduledTalk{}, fmt.Errorf("session %s: %w", session.ID, err)
	}
	durationMin, err := CalculateDurationMin(session.StartsAt, session.EndsAt)
	if err != nil {
		return domain.ScheduledTalk{}, fmt.Errorf("session %s: %w", session.ID, err)
	}

	talk := domain.ScheduledTalk{
		ID:          session.ID,
		Title:       session.Title,
		Description: session.Description,
		Speakers:    []domain.Speaker{},
		Slot:        slot,
		DurationMin: durationMin,
	}
	if session.IsServiceSession {
		return talk, nil
	}

	category, err := f.categories.Create(session.CategoryItems, session.IsPlenumSession)
	if err != nil {
		return domain.ScheduledTalk{}, fmt.Errorf("session %s: %w", session.ID, err)
	}
	answer := f.answers.Create(session.QuestionAnswers)
	for _, speakerID := range session.Speakers {
		speaker, err := f.speakers.Speaker(speakerID)
		if err != nil {
			return domain.ScheduledTalk{}, fmt.Errorf("session %s: %w", session.ID, err)
		}
		talk.Speakers = append(talk.Speakers, speaker)
	}
	talk.Category = &category
	talk.Answer = &answer
	// Sessionize has no slide URL field, so the live URL carries it.
	talk.SlideURL = session.LiveURL
	talk.RecordingURL = session.RecordingURL
	return talk, nil
}

// CreateTalksFromData builds the timetable talks of a Sessionize snapshot in
// upstream order. Any dangling reference aborts the whole build.
func CreateTalksFromData(data domain.SessionFetcherResponse) (domain.ScheduledTalks, error) {
	rooms := NewRoomResolver(data.Rooms)
	sessions := FilterSessions(data.Sessions)
	slots, err := NewSlotResolver(rooms, numberedStarts(sessions))
	if err != nil {
		return domain.ScheduledTalks{}, err
	}
	factory := NewScheduledTalkFactory(
		NewCategoryResolver(data.Categories),
		NewQuestionAnswerResolver(data.Questions),
		NewSpeakerResolver(data.Speakers),
		slots,
	)

	talks := make([]domain.ScheduledTalk, 0, len(sessions))
	for _, session := range sessions {
		talk, err := factory.Create(session)
		if err != nil {
			return domain.ScheduledTalks{}, err
		}
		talks = append(talks, talk)
	}
	return domain.NewScheduledTalks(talks), nil
}
