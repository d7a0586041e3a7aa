package domain

// PlenaryLevel is the audience level forced onto plenum sessions.
const PlenaryLevel = "All"

// CategoryField identifies which Category attribute a Sessionize category group fills.
type CategoryField int

const (
	CategoryTrack CategoryField = iota + 1
	CategoryLevel
	CategorySpeakingLanguage
	CategorySlideLanguage
)

// CategoryGroups maps the Sessionize category group titles the timetable knows
// about to the Category attribute they fill. Groups not listed are ignored.
var CategoryGroups = map[string]CategoryField{
	"Track":    CategoryTrack,
	"Level":    CategoryLevel,
	"Language": CategorySpeakingLanguage,
	"発表資料の言語 / Language of presentation material": CategorySlideLanguage,
}

// Category holds the single-choice tags of a talk, one per recognized group.
type Category struct {
	Track            *string `json:"track"`
	Level            *string `json:"level"`
	SpeakingLanguage *string `json:"speaking_language"`
	SlideLanguage    *string `json:"slide_language"`
}

// Set assigns value to the attribute identified by field. Unknown fields are ignored.
func (c *Category) Set(field CategoryField, value string) {
	switch field {
	case CategoryTrack:
		c.Track = &value
	case CategoryLevel:
		c.Level = &value
	case CategorySpeakingLanguage:
		c.SpeakingLanguage = &value
	case CategorySlideLanguage:
		c.SlideLanguage = &value
	}
}
