package results

import (
	"fmt"
	"math"

	"trivia/internal/question"
	"trivia/internal/session"
)

// Band is the qualitative label for a percentage.
type Band string

const (
	BandExcellent        Band = "Excellent!"
	BandGood             Band = "Good job!"
	BandFair             Band = "Not bad!"
	BandNeedsImprovement Band = "Keep studying!"
)

// bandFloors are checked in order; the first floor at or below the
// percentage wins, so the bands are disjoint and cover [0,100].
var bandFloors = []struct {
	floor int
	band  Band
}{
	{floor: 80, band: BandExcellent},
	{floor: 60, band: BandGood},
	{floor: 40, band: BandFair},
	{floor: math.MinInt, band: BandNeedsImprovement},
}

// Entry pairs a question with the player's recorded answer.
type Entry struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	Category      string `json:"category"`
	Selected      int    `json:"selectedAnswer"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"isCorrect"`
}

// Summary is the post-session result.
type Summary struct {
	SessionID  string              `json:"sessionId,omitempty"`
	Difficulty question.Difficulty `json:"difficulty,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Score      int                 `json:"score"`
	Total      int                 `json:"total"`
	Percentage int                 `json:"percentage"`
	Band       Band                `json:"band"`
	Entries    []Entry             `json:"entries"`
}

// Incorrect returns the entries answered wrongly.
func (s Summary) Incorrect() []Entry {
	var out []Entry
	for _, entry := range s.Entries {
		if !entry.Correct {
			out = append(out, entry)
		}
	}
	return out
}

// Percentage returns round(score / total * 100), or 0 for an empty set.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// BandFor maps a percentage to its band.
func BandFor(percentage int) Band {
	for _, candidate := range bandFloors {
		if percentage >= candidate.floor {
			return candidate.band
		}
	}
	return BandNeedsImprovement
}

// Summarize builds the result for a completed question sequence and its
// answer log. The log must hold exactly one record per question, in order.
func Summarize(questions []question.Question, answers []session.AnswerRecord) (Summary, error) {
	if len(questions) != len(answers) {
		return Summary{}, fmt.Errorf("answer log has %d records for %d questions", len(answers), len(questions))
	}
	summary := Summary{Total: len(questions), Entries: make([]Entry, 0, len(questions))}
	for i, q := range questions {
		record := answers[i]
		if record.QuestionIndex != i {
			return Summary{}, fmt.Errorf("answer %d references question %d", i, record.QuestionIndex)
		}
		if record.Correct {
			summary.Score++
		}
		summary.Entries = append(summary.Entries, Entry{
			Index:         i,
			Question:      q.Prompt,
			Category:      q.Category,
			Selected:      record.Selected,
			YourAnswer:    q.Option(record.Selected),
			CorrectAnswer: q.CorrectOption(),
			Correct:       record.Correct,
		})
	}
	summary.Percentage = Percentage(summary.Score, summary.Total)
	summary.Band = BandFor(summary.Percentage)
	return summary, nil
}

// FromView summarizes a session read model that has reached Results.
func FromView(view session.View) (Summary, error) {
	if view.State != session.StateResults {
		return Summary{}, fmt.Errorf("session is in %s, not results", view.State)
	}
	summary, err := Summarize(view.Questions, view.Answers)
	if err != nil {
		return Summary{}, err
	}
	if summary.Score != view.Score {
		return Summary{}, fmt.Errorf("running score %d disagrees with answer log %d", view.Score, summary.Score)
	}
	summary.SessionID = view.SessionID
	summary.Difficulty = view.Difficulty
	for _, category := range view.Categories {
		if category.Selected {
			summary.Categories = append(summary.Categories, category.Label)
		}
	}
	return summary, nil
}
