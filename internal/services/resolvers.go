package services

import (
	"slices"
	"time"

	"pyconjptalks/internal/domain"
)

// RoomResolver resolves Sessionize room ids to room names.
type RoomResolver struct {
	idToName map[int]string
}

func NewRoomResolver(rooms []domain.SessionFetcherRoom) *RoomResolver {
	idToName := make(map[int]string, len(rooms))
	for _, r := range rooms {
		idToName[r.ID] = r.Name
	}
	return &RoomResolver{idToName: idToName}
}

func (r *RoomResolver) Name(roomID int) (string, error) {
	name, ok := r.idToName[roomID]
	if !ok {
		return "", domain.UnknownReference("room", roomID)
	}
	return name, nil
}

// SpeakerResolver resolves Sessionize speaker ids to speakers.
type SpeakerResolver struct {
	idToSpeaker map[string]domain.Speaker
}

func NewSpeakerResolver(speakers []domain.SessionFetcherSpeaker) *SpeakerResolver {
	idToSpeaker := make(map[string]domain.Speaker, len(speakers))
	for _, s := range speakers {
		idToSpeaker[s.ID] = domain.NewSpeaker(s.FullName, s.Bio)
	}
	return &SpeakerResolver{idToSpeaker: idToSpeaker}
}

func (r *SpeakerResolver) Speaker(speakerID string) (domain.Speaker, error) {
	s, ok := r.idToSpeaker[speakerID]
	if !ok {
		return domain.Speaker{}, domain.UnknownReference("speaker", speakerID)
	}
	return s, nil
}

// CategoryResolver turns a session's category item ids into a Category.
type CategoryResolver struct {
	itemIDToGroupTitle map[int]string
	itemIDToName       map[int]string
}

func NewCategoryResolver(categories []domain.SessionFetcherCategory) *CategoryResolver {
	itemIDToGroupTitle := make(map[int]string)
	itemIDToName := make(map[int]string)
	for _, group := range categories {
		for _, item := range group.Items {
			itemIDToGroupTitle[item.ID] = group.Title
			itemIDToName[item.ID] = item.Name
		}
	}
	return &CategoryResolver{
		itemIDToGroupTitle: itemIDToGroupTitle,
		itemIDToName:       itemIDToName,
	}
}

// Create resolves itemIDs group by group. Items of unrecognized groups are
// skipped; an item id missing from the snapshot is an error. Plenum sessions
// always get level PlenaryLevel.
func (r *CategoryResolver) Create(itemIDs []int, isPlenary bool) (domain.Category, error) {
	var c domain.Category
	for _, id := range itemIDs {
		title, ok := r.itemIDToGroupTitle[id]
		if !ok {
			return domain.Category{}, domain.UnknownReference("category item", id)
		}
		field, known := domain.CategoryGroups[title]
		if !known {
			continue
		}
		c.Set(field, r.itemIDToName[id])
	}
	if isPlenary {
		c.Set(domain.CategoryLevel, domain.PlenaryLevel)
	}
	return c, nil
}

// QuestionAnswerResolver picks the answers to the exported questions.
type QuestionAnswerResolver struct {
	labelToID map[string]int
}

func NewQuestionAnswerResolver(questions []domain.SessionFetcherQuestion) *QuestionAnswerResolver {
	labelToID := make(map[string]int, len(questions))
	for _, q := range questions {
		labelToID[q.Question] = q.ID
	}
	return &QuestionAnswerResolver{labelToID: labelToID}
}

// Create never fails: questions that were not asked in this event or not
// answered by the speaker stay nil.
func (r *QuestionAnswerResolver) Create(answers []domain.SessionFetcherQuestionAnswer) domain.QuestionAnswer {
	idToAnswer := make(map[int]string, len(answers))
	for _, a := range answers {
		idToAnswer[a.QuestionID] = a.AnswerValue
	}
	var qa domain.QuestionAnswer
	for label, field := range domain.QuestionLabels {
		id, asked := r.labelToID[label]
		if !asked {
			continue
		}
		if answer, ok := idToAnswer[id]; ok {
			qa.Set(field, answer)
		}
	}
	return qa
}

// SlotResolver builds slots from a start time and a room id.
type SlotResolver struct {
	rooms             *RoomResolver
	startToSlotNumber map[string]int
}

func NewSlotResolver(rooms *RoomResolver, numberedStarts []string) (*SlotResolver, error) {
	numbers, err := SlotNumbers(numberedStarts)
	if err != nil {
		return nil, err
	}
	return &SlotResolver{rooms: rooms, startToSlotNumber: numbers}, nil
}

// Create returns the slot for a session. A start time outside the numbered
// set gets slot number 0.
func (r *SlotResolver) Create(startsAt string, roomID int) (domain.Slot, error) {
	room, err := r.rooms.Name(roomID)
	if err != nil {
		return domain.Slot{}, err
	}
	return domain.NewSlot(room, startsAt, r.startToSlotNumber[startsAt])
}

// SlotNumbers numbers the distinct start times of each calendar day
// chronologically from 1. Duplicates share a number.
func SlotNumbers(starts []string) (map[string]int, error) {
	type start struct {
		raw string
		at  time.Time
	}
	byDay := make(map[time.Time][]start)
	seen := make(map[string]struct{}, len(starts))
	for _, s := range starts {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		at, err := domain.ParseSessionizeDateTime(s)
		if err != nil {
			return nil, err
		}
		day := domain.DateOf(at)
		byDay[day] = append(byDay[day], start{raw: s, at: at})
	}

	numbers := make(map[string]int, len(seen))
	for _, dayStarts := range byDay {
		slices.SortFunc(dayStarts, func(a, b start) int {
			return a.at.Compare(b.at)
		})
		for i, s := range dayStarts {
			numbers[s.raw] = i + 1
		}
	}
	return numbers, nil
}
