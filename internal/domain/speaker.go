package domain

// Speaker is a talk speaker as exported to the timetable.
// Profile is nil when the speaker left the Sessionize bio empty.
type Speaker struct {
	Name    string  `json:"name"`
	Profile *string `json:"profile"`
}

// NewSpeaker returns a Speaker with the given name and optional profile.
func NewSpeaker(name string, profile *string) Speaker {
	return Speaker{Name: name, Profile: profile}
}
