package domain

// AnswerField identifies which QuestionAnswer attribute a submission question fills.
type AnswerField int

const (
	AnswerElevatorPitch AnswerField = iota + 1
	AnswerPriorKnowledge
	AnswerTakeAway
)

// QuestionLabels maps the Sessionize question labels the timetable exports
// to the QuestionAnswer attribute they fill.
var QuestionLabels = map[string]AnswerField{
	"Elevator Pitch": AnswerElevatorPitch,
	"オーディエンスに求める前提知識": AnswerPriorKnowledge,
	"オーディエンスが持って帰れる具体的な知識やノウハウ": AnswerTakeAway,
}

// QuestionAnswer holds a talk's answers to the submission questions.
// A nil attribute means the question was not asked or not answered.
type QuestionAnswer struct {
	ElevatorPitch  *string `json:"elevator_pitch"`
	PriorKnowledge *string `json:"prior_knowledge"`
	TakeAway       *string `json:"take_away"`
}

// Set assigns value to the attribute identified by field. Unknown fields are ignored.
func (q *QuestionAnswer) Set(field AnswerField, value string) {
	switch field {
	case AnswerElevatorPitch:
		q.ElevatorPitch = &value
	case AnswerPriorKnowledge:
		q.PriorKnowledge = &value
	case AnswerTakeAway:
		q.TakeAway = &value
	}
}
