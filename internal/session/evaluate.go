package session

import "trivia/internal/question"

// Evaluate creates the answer record for a question. Correctness is fixed at
// creation time.
func Evaluate(q question.Question, index, selected int) AnswerRecord {
	return AnswerRecord{
		QuestionIndex: index,
		Selected:      selected,
		Correct:       q.IsCorrect(selected),
	}
}

// Tally counts correct records.
func Tally(answers []AnswerRecord) int {
	score := 0
	for _, answer := range answers {
		if answer.Correct {
			score++
		}
	}
	return score
}
