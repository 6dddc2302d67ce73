package session

import "testing"

// TestViewBeforeAndAfterReveal verifies option marks and the advance label.
func TestViewBeforeAndAfterReveal(t *testing.T) {
	questions := sampleQuestions(2)
	s := playingSession(t, questions)
	wrong := (questions[0].Correct + 1) % 4
	s = mustReduce(t, s, SelectAnswer(wrong))

	view := BuildView(s)
	if view.Question == nil || view.Question.Number != 1 || view.Question.Total != 2 {
		t.Fatalf("unexpected question view: %+v", view.Question)
	}
	if view.AdvanceLabel != LabelCheckAnswer {
		t.Fatalf("expected %q, got %q", LabelCheckAnswer, view.AdvanceLabel)
	}
	if view.Question.Options[wrong].Mark != MarkSelected {
		t.Fatalf("expected selected mark before reveal")
	}

	s = mustReduce(t, s, Advance())
	view = BuildView(s)
	if view.AdvanceLabel != LabelNextQuestion {
		t.Fatalf("expected %q, got %q", LabelNextQuestion, view.AdvanceLabel)
	}
	options := view.Question.Options
	if options[questions[0].Correct].Mark != MarkCorrect || options[questions[0].Correct].Checkmark {
		t.Fatalf("expected correct option without checkmark, got %+v", options[questions[0].Correct])
	}
	if options[wrong].Mark != MarkWrong {
		t.Fatalf("expected wrong mark on selection, got %+v", options[wrong])
	}

	s = mustReduce(t, s, Advance())
	s = mustReduce(t, s, SelectAnswer(questions[1].Correct))
	s = mustReduce(t, s, Advance())
	view = BuildView(s)
	if view.AdvanceLabel != LabelFinishGame {
		t.Fatalf("expected %q on last question, got %q", LabelFinishGame, view.AdvanceLabel)
	}
	if !view.Question.Options[questions[1].Correct].Checkmark {
		t.Fatalf("expected checkmark when the selection is correct")
	}
}

// TestViewResultsCarriesLog verifies Results exposes questions and answers.
func TestViewResultsCarriesLog(t *testing.T) {
	s := answer(t, playingSession(t, sampleQuestions(1)), 0)
	view := BuildView(s)
	if view.State != StateResults || view.Question != nil {
		t.Fatalf("unexpected results view: %+v", view)
	}
	if len(view.Questions) != 1 || len(view.Answers) != 1 || view.Score != 1 {
		t.Fatalf("expected full log in results view, got %+v", view)
	}
}
