package session

import "testing"

// TestEvaluateFixesCorrectness verifies records compare selection with the key.
func TestEvaluateFixesCorrectness(t *testing.T) {
	q := sampleQuestions(3)[2]
	right := Evaluate(q, 2, q.Correct)
	wrong := Evaluate(q, 2, (q.Correct+1)%4)
	if !right.Correct || wrong.Correct {
		t.Fatalf("unexpected correctness: right=%v wrong=%v", right.Correct, wrong.Correct)
	}
	if right.QuestionIndex != 2 || wrong.Selected != (q.Correct+1)%4 {
		t.Fatalf("unexpected record fields: %+v %+v", right, wrong)
	}
	if Tally([]AnswerRecord{right, wrong, right}) != 2 {
		t.Fatalf("expected tally of 2")
	}
}
