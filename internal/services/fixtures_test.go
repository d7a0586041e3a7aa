package services

import (
	"time"

	"pyconjptalks/internal/domain"
)

func ptr[T any](v T) *T { return &v }

const (
	venueOpenID = "6a66fe7e-4a71-48b2-85ea-174d2ad98d92"
	openingID   = "353ae2e0-b3fe-4a76-adf1-b85f612833d2"
	keynoteID   = "56c983c2-262e-4e4d-ba07-8f2496f2feba"
	closingID   = "9e0b7d58-f102-4453-9fbe-f1bd5eb47183"

	speaker1ID = "c6e3c83c-ef69-4203-882f-b9326e388e87"
	speaker2ID = "f3777251-0201-4048-abaa-1d234700e441"
	speaker3ID = "1b8d29d9-81c4-43a0-8794-76799d1a4abc"
	speaker4ID = "0ead2886-0db3-44f2-ae29-2c2240adfc6b"

	questionPitch     = 30014
	questionTakeAway  = 30016
	questionKnowledge = 30018
)

var theDay = time.Date(2021, 10, 15, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2021, 10, 15, hour, minute, 0, 0, time.UTC)
}

func serviceSession(id, title string, description *string, startsAt, endsAt string) domain.SessionFetcherSession {
	return domain.SessionFetcherSession{
		ID:               id,
		Title:            title,
		Description:      description,
		StartsAt:         startsAt,
		EndsAt:           endsAt,
		IsServiceSession: true,
		Speakers:         []string{},
		CategoryItems:    []int{},
		QuestionAnswers:  []domain.SessionFetcherQuestionAnswer{},
		RoomID:           20030,
	}
}

func contentSession(id, name, speakerID string, roomID int, startsAt, endsAt string, items []int) domain.SessionFetcherSession {
	return domain.SessionFetcherSession{
		ID:            id,
		Title:         name,
		Description:   ptr(name + "の\n詳細です"),
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Speakers:      []string{speakerID},
		CategoryItems: items,
		QuestionAnswers: []domain.SessionFetcherQuestionAnswer{
			{QuestionID: questionPitch, AnswerValue: name + "のエレベータピッチ"},
			{QuestionID: questionTakeAway, AnswerValue: name + "で持ち帰れるもの"},
			{QuestionID: questionKnowledge, AnswerValue: name + "の前提知識"},
		},
		RoomID:       roomID,
		LiveURL:      ptr(""),
		RecordingURL: ptr(""),
	}
}

// timetableData is one conference day:
//
//	Venue open / 開場 (not numbered)
//	Opening (Day 1)
//	Keynote
//	トーク3, トーク2
//	トーク1, トーク4
//	Closing (Day 1)
func timetableData() domain.SessionFetcherResponse {
	return domain.SessionFetcherResponse{
		Sessions: []domain.SessionFetcherSession{
			serviceSession(venueOpenID, "Venue open / 開場", nil, "2021-10-15T12:30:00", "2021-10-15T13:00:00"),
			serviceSession(openingID, "Opening (Day 1)", ptr("オープニング、盛り上がっていきましょう！"), "2021-10-15T13:00:00", "2021-10-15T13:30:00"),
			serviceSession(keynoteID, "Keynote: Day 1 キーノートスピーカー", ptr("〇〇で有名な氏による基調講演です"), "2021-10-15T13:30:00", "2021-10-15T14:30:00"),
			contentSession("203012", "トーク2", speaker2ID, 20007, "2021-10-15T15:00:00", "2021-10-15T15:30:00", []int{80045, 80019, 80023, 80024}),
			contentSession("203023", "トーク3", speaker3ID, 20001, "2021-10-15T15:00:00", "2021-10-15T15:30:00", []int{80046, 80020, 80023, 80026}),
			contentSession("203001", "トーク1", speaker1ID, 20001, "2021-10-15T17:00:00", "2021-10-15T17:30:00", []int{80047, 80018, 80022, 80025}),
			contentSession("203034", "トーク4", speaker4ID, 20007, "2021-10-15T17:00:00", "2021-10-15T17:30:00", []int{80043, 80019, 80023, 80026}),
			serviceSession(closingID, "Closing (Day 1)", nil, "2021-10-15T18:45:00", "2021-10-15T19:00:00"),
		},
		Speakers: []domain.SessionFetcherSpeaker{
			{ID: speaker1ID, FullName: "スピーカー1", Bio: ptr("スピーカー1のプロフィール")},
			{ID: speaker2ID, FullName: "スピーカー2", Bio: ptr("プロフィール of スピーカー2")},
			{ID: speaker3ID, FullName: "スピーカー3", Bio: ptr("スピーカー3のプロフィール。")},
			{ID: speaker4ID, FullName: "スピーカー4", Bio: nil},
		},
		Questions: []domain.SessionFetcherQuestion{
			{ID: questionPitch, Question: "Elevator Pitch"},
			{ID: questionTakeAway, Question: "オーディエンスが持って帰れる具体的な知識やノウハウ"},
			{ID: questionKnowledge, Question: "オーディエンスに求める前提知識"},
		},
		Categories: []domain.SessionFetcherCategory{
			{
				ID:    30011,
				Title: "Track",
				Items: []domain.SessionFetcherCategoryItem{
					{ID: 80045, Name: "Python core and around"},
					{ID: 80046, Name: "Machine learning"},
					{ID: 80047, Name: "Web programming"},
					{ID: 80043, Name: "Visual / Game / Music"},
				},
			},
			{
				ID:    30012,
				Title: "Level",
				Items: []domain.SessionFetcherCategoryItem{
					{ID: 80018, Name: "Beginner"},
					{ID: 80019, Name: "Intermediate"},
					{ID: 80020, Name: "Advanced"},
				},
			},
			{
				ID:    30013,
				Title: "Language",
				Items: []domain.SessionFetcherCategoryItem{
					{ID: 80022, Name: "English"},
					{ID: 80023, Name: "Japanese"},
				},
			},
			{
				ID:    30015,
				Title: "発表資料の言語 / Language of presentation material",
				Items: []domain.SessionFetcherCategoryItem{
					{ID: 80025, Name: "English only"},
					{ID: 80026, Name: "Japanese only"},
					{ID: 80024, Name: "Both"},
				},
			},
		},
		Rooms: []domain.SessionFetcherRoom{
			{ID: 20030, Name: "#pyconjp"},
			{ID: 20001, Name: "#pyconjp_1"},
			{ID: 20007, Name: "#pyconjp_2"},
		},
	}
}

func serviceTalk(id, title string, description *string, slot domain.Slot, durationMin int) domain.ScheduledTalk {
	return domain.ScheduledTalk{
		ID:          id,
		Title:       title,
		Description: description,
		Speakers:    []domain.Speaker{},
		Slot:        slot,
		DurationMin: durationMin,
	}
}

func contentTalk(id, name string, category domain.Category, speaker domain.Speaker, slot domain.Slot) domain.ScheduledTalk {
	return domain.ScheduledTalk{
		ID:          id,
		Title:       name,
		Description: ptr(name + "の\n詳細です"),
		Category:    &category,
		Answer: &domain.QuestionAnswer{
			ElevatorPitch:  ptr(name + "のエレベータピッチ"),
			PriorKnowledge: ptr(name + "の前提知識"),
			TakeAway:       ptr(name + "で持ち帰れるもの"),
		},
		Speakers:     []domain.Speaker{speaker},
		Slot:         slot,
		DurationMin:  30,
		SlideURL:     ptr(""),
		RecordingURL: ptr(""),
	}
}

func category(track, level, speaking, slide string) domain.Category {
	return domain.Category{Track: &track, Level: &level, SpeakingLanguage: &speaking, SlideLanguage: &slide}
}

func slot(room string, start time.Time, number int) domain.Slot {
	return domain.Slot{Room: room, Day: theDay, Start: start, Number: number}
}

// expectedTalks is timetableData after CreateTalksFromData, in upstream order.
func expectedTalks() []domain.ScheduledTalk {
	return []domain.ScheduledTalk{
		serviceTalk(venueOpenID, "Venue open / 開場", nil, slot("#pyconjp", at(12, 30), 0), 30),
		serviceTalk(openingID, "Opening (Day 1)", ptr("オープニング、盛り上がっていきましょう！"), slot("#pyconjp", at(13, 0), 1), 30),
		serviceTalk(keynoteID, "Keynote: Day 1 キーノートスピーカー", ptr("〇〇で有名な氏による基調講演です"), slot("#pyconjp", at(13, 30), 2), 60),
		contentTalk("203012", "トーク2",
			category("Python core and around", "Intermediate", "Japanese", "Both"),
			domain.NewSpeaker("スピーカー2", ptr("プロフィール of スピーカー2")),
			slot("#pyconjp_2", at(15, 0), 3)),
		contentTalk("203023", "トーク3",
			category("Machine learning", "Advanced", "Japanese", "Japanese only"),
			domain.NewSpeaker("スピーカー3", ptr("スピーカー3のプロフィール。")),
			slot("#pyconjp_1", at(15, 0), 3)),
		contentTalk("203001", "トーク1",
			category("Web programming", "Beginner", "English", "English only"),
			domain.NewSpeaker("スピーカー1", ptr("スピーカー1のプロフィール")),
			slot("#pyconjp_1", at(17, 0), 4)),
		contentTalk("203034", "トーク4",
			category("Visual / Game / Music", "Intermediate", "Japanese", "Japanese only"),
			domain.NewSpeaker("スピーカー4", nil),
			slot("#pyconjp_2", at(17, 0), 4)),
		serviceTalk(closingID, "Closing (Day 1)", nil, slot("#pyconjp", at(18, 45), 5), 15),
	}
}
