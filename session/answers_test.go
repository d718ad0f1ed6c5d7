package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/session"
)

var twoQuestions = schema.Questions{
	{Text: "Which transport do you use?", Options: []string{"A", "B", "C"}},
	{Text: "Do you feel safe?", Options: []string{"yes", "no"}},
}

func TestAnswersSelectLastWriteWins(t *testing.T) {
	a := session.NewAnswers(twoQuestions)

	assert.NoError(t, a.Select(0, "A"))
	assert.NoError(t, a.Select(0, "C"))
	assert.NoError(t, a.Select(1, "no"))
	assert.NoError(t, a.Select(1, "no"))

	assert.Equal(t, schema.AnswerSet{0: "C", 1: "no"}, a.Snapshot())
	assert.Equal(t, 2, a.Len())
}

func TestAnswersSelectEveryValidPair(t *testing.T) {
	a := session.NewAnswers(twoQuestions)

	for i, q := range twoQuestions {
		for _, o := range q.Options {
			assert.NoError(t, a.Select(i, o))
			selected, ok := a.Selected(i)
			assert.True(t, ok)
			assert.Equal(t, o, selected)
			assert.Equal(t, o, a.Snapshot()[i])
		}
	}
}

func TestAnswersSelectInvalidQuestion(t *testing.T) {
	a := session.NewAnswers(twoQuestions)

	assert.True(t, errors.Is(a.Select(-1, "A"), session.ErrInvalidQuestion))
	assert.True(t, errors.Is(a.Select(2, "A"), session.ErrInvalidQuestion))
	assert.Equal(t, 0, a.Len())
}

func TestAnswersSelectInvalidOption(t *testing.T) {
	a := session.NewAnswers(twoQuestions)

	assert.NoError(t, a.Select(0, "B"))
	assert.True(t, errors.Is(a.Select(0, "yes"), session.ErrInvalidOption))
	assert.Equal(t, schema.AnswerSet{0: "B"}, a.Snapshot(), "invalid selection must keep the previous answer")
}

func TestAnswersSnapshotIsolation(t *testing.T) {
	a := session.NewAnswers(twoQuestions)
	assert.NoError(t, a.Select(0, "A"))

	snapshot := a.Snapshot()
	assert.NoError(t, a.Select(0, "B"))
	assert.NoError(t, a.Select(1, "yes"))
	snapshot[0] = "C"

	assert.Equal(t, "C", snapshot[0])
	assert.Equal(t, schema.AnswerSet{0: "B", 1: "yes"}, a.Snapshot())
}

func TestAnswersUnansweredAndReset(t *testing.T) {
	a := session.NewAnswers(twoQuestions)
	assert.NoError(t, a.Select(0, "A"))

	_, ok := a.Selected(1)
	assert.False(t, ok)

	a.Reset()
	assert.Equal(t, schema.AnswerSet{}, a.Snapshot())
}
