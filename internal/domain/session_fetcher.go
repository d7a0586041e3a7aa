package domain

import "context"

// SessionFetcher fetches schedule data from Sessionize (or a test double).
type SessionFetcher interface {
	Fetch(ctx context.Context, endpointID string) (SessionFetcherResponse, error)
}

// SessionFetcherResponse is the Sessionize All API response shape.
type SessionFetcherResponse struct {
	Sessions   []SessionFetcherSession  `json:"sessions"`
	Speakers   []SessionFetcherSpeaker  `json:"speakers"`
	Rooms      []SessionFetcherRoom     `json:"rooms"`
	Categories []SessionFetcherCategory `json:"categories"`
	Questions  []SessionFetcherQuestion `json:"questions"`
}

// SessionFetcherRoom is a room in the Sessionize All response (flat list).
type SessionFetcherRoom struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sort int    `json:"sort"`
}

// SessionFetcherSession is a session in the Sessionize All response.
// StartsAt and EndsAt keep the raw "2006-01-02T15:04:05" strings: Sessionize
// sends local times without an offset, and slot numbering keys on them.
type SessionFetcherSession struct {
	ID               string                         `json:"id"`
	Title            string                         `json:"title"`
	Description      *string                        `json:"description"`
	StartsAt         string                         `json:"startsAt"`
	EndsAt           string                         `json:"endsAt"`
	IsServiceSession bool                           `json:"isServiceSession"`
	IsPlenumSession  bool                           `json:"isPlenumSession"`
	Speakers         []string                       `json:"speakers"`
	CategoryItems    []int                          `json:"categoryItems"`
	QuestionAnswers  []SessionFetcherQuestionAnswer `json:"questionAnswers"`
	RoomID           int                            `json:"roomId"`
	LiveURL          *string                        `json:"liveUrl"`
	RecordingURL     *string                        `json:"recordingUrl"`
}

// SessionFetcherQuestionAnswer is one answer a speaker gave to a submission question.
type SessionFetcherQuestionAnswer struct {
	QuestionID  int    `json:"questionId"`
	AnswerValue string `json:"answerValue"`
}

// SessionFetcherSpeaker is a speaker in the Sessionize All response.
type SessionFetcherSpeaker struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	FullName       string  `json:"fullName"`
	Bio            *string `json:"bio"`
	TagLine        string  `json:"tagLine"`
	ProfilePicture string  `json:"profilePicture"`
	IsTopSpeaker   bool    `json:"isTopSpeaker"`
}

// SessionFetcherCategoryItem is a single category item in the Sessionize All response.
type SessionFetcherCategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sort int    `json:"sort"`
}

// SessionFetcherCategory is a category group in the Sessionize All response.
type SessionFetcherCategory struct {
	ID    int                          `json:"id"`
	Title string                       `json:"title"`
	Items []SessionFetcherCategoryItem `json:"items"`
	Sort  int                          `json:"sort"`
	Type  string                       `json:"type"`
}

// SessionFetcherQuestion is a submission question asked to every speaker.
type SessionFetcherQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Sort     int    `json:"sort"`
}
