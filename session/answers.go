package session

import (
	"fmt"

	"github.com/pariparajuli/geosurvey/schema"
)

// Answers tracks the chosen option of each question of a survey
type Answers struct {
	questions schema.Questions
	selected  schema.AnswerSet
}

func NewAnswers(questions schema.Questions) *Answers {
	return &Answers{
		questions: questions,
		selected:  schema.AnswerSet{},
	}
}

// Select records option for the question at index, replacing any previous
// choice
func (a *Answers) Select(index int, option string) error {
	if index < 0 || index >= len(a.questions) {
		return fmt.Errorf("%w: %d", ErrInvalidQuestion, index)
	}

	if !a.questions[index].HasOption(option) {
		return fmt.Errorf("%w: %q for question %d", ErrInvalidOption, option, index)
	}

	a.selected[index] = option
	return nil
}

// Selected returns the choice for a question and whether it is answered
func (a *Answers) Selected(index int) (string, bool) {
	o, ok := a.selected[index]
	return o, ok
}

// Snapshot returns a copy which later selections do not affect
func (a *Answers) Snapshot() schema.AnswerSet {
	s := make(schema.AnswerSet, len(a.selected))
	for k, v := range a.selected {
		s[k] = v
	}
	return s
}

// Len is the number of answered questions
func (a *Answers) Len() int {
	return len(a.selected)
}

func (a *Answers) Reset() {
	a.selected = schema.AnswerSet{}
}
