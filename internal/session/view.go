package session

import "trivia/internal/question"

// OptionMark describes how an option is shown.
type OptionMark int

const (
	// MarkNeutral is an unselected option.
	MarkNeutral OptionMark = iota
	// MarkSelected is the pending selection before reveal.
	MarkSelected
	// MarkCorrect is the correct option after reveal.
	MarkCorrect
	// MarkWrong is a selected incorrect option after reveal.
	MarkWrong
	// MarkDimmed is any other option after reveal.
	MarkDimmed
)

// Advance button labels.
const (
	LabelCheckAnswer  = "Check answer"
	LabelNextQuestion = "Next question"
	LabelFinishGame   = "Finish game"
)

// CategoryView is one entry of the category picker.
type CategoryView struct {
	Label    string
	Selected bool
}

// OptionView is one answer option of the current question.
type OptionView struct {
	Letter string
	Text   string
	Mark   OptionMark
	// Checkmark is set on the correct option when the player chose it.
	Checkmark bool
}

// QuestionView is the current question as presented.
type QuestionView struct {
	Number   int
	Total    int
	Prompt   string
	Category string
	Options  []OptionView
}

// View is the minimal read model the presentation layer needs.
type View struct {
	SessionID     string
	State         State
	Categories    []CategoryView
	Difficulty    question.Difficulty
	QuestionCount int
	Question      *QuestionView
	Score         int
	Selected      int
	Revealed      bool
	AdvanceLabel  string
	Error         string
	Questions     []question.Question
	Answers       []AnswerRecord
}

// BuildView derives the read model from a session.
func BuildView(s Session) View {
	view := View{
		SessionID:     s.ID,
		State:         s.State,
		Difficulty:    s.Config.Difficulty(),
		QuestionCount: s.Config.QuestionCount(),
		Score:         s.Score,
		Selected:      noSelection,
		Error:         s.LastError,
	}
	for _, label := range s.Config.catalog {
		view.Categories = append(view.Categories, CategoryView{Label: label, Selected: s.Config.Selected(label)})
	}

	switch s.State {
	case StatePlaying:
		current, ok := s.CurrentQuestion()
		if !ok {
			return view
		}
		view.Selected = s.Pending
		view.Revealed = s.Revealed
		view.AdvanceLabel = advanceLabel(s)
		view.Question = &QuestionView{
			Number:   s.Current + 1,
			Total:    len(s.Questions),
			Prompt:   current.Prompt,
			Category: current.Category,
			Options:  optionViews(current, s.Pending, s.Revealed),
		}
	case StateResults:
		view.Questions = question.CloneAll(s.Questions)
		view.Answers = append([]AnswerRecord(nil), s.Answers...)
	}
	return view
}

func advanceLabel(s Session) string {
	if !s.Revealed {
		return LabelCheckAnswer
	}
	if s.IsLastQuestion() {
		return LabelFinishGame
	}
	return LabelNextQuestion
}

func optionViews(q question.Question, selected int, revealed bool) []OptionView {
	options := make([]OptionView, 0, len(q.Options))
	for i, text := range q.Options {
		option := OptionView{Letter: question.OptionLetter(i), Text: text}
		switch {
		case revealed && i == q.Correct:
			option.Mark = MarkCorrect
			option.Checkmark = selected == q.Correct
		case revealed && i == selected:
			option.Mark = MarkWrong
		case revealed:
			option.Mark = MarkDimmed
		case i == selected:
			option.Mark = MarkSelected
		}
		options = append(options, option)
	}
	return options
}
