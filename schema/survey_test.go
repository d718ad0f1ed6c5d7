package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurveyValidate(t *testing.T) {
	s := Survey{
		Name: "commute",
		Questions: Questions{
			{Text: "How do you travel?", Options: []string{"bus", "bike", "walk"}},
			{Text: "Is it safe?", Options: []string{"yes", "no"}},
		},
	}
	assert.NoError(t, s.Validate())
}

func TestSurveyValidateEmptyName(t *testing.T) {
	s := Survey{Questions: Questions{{Text: "q", Options: []string{"a", "b"}}}}
	assert.Equal(t, ErrEmptySurveyName, s.Validate())
}

func TestSurveyValidateNoQuestions(t *testing.T) {
	s := Survey{Name: "empty"}
	assert.Equal(t, ErrNoQuestions, s.Validate())
}

func TestSurveyValidateTooFewOptions(t *testing.T) {
	s := Survey{
		Name:      "single",
		Questions: Questions{{Text: "only one?", Options: []string{"a"}}},
	}
	assert.EqualError(t, s.Validate(), "question 0 needs at least 2 options")
}

func TestSurveyValidateDuplicatedOption(t *testing.T) {
	s := Survey{
		Name:      "dup",
		Questions: Questions{{Text: "pick", Options: []string{"a", "a"}}},
	}
	assert.EqualError(t, s.Validate(), `question 0 has duplicated option "a"`)
}

func TestQuestionHasOption(t *testing.T) {
	q := Question{Text: "pick", Options: []string{"A", "B"}}
	assert.True(t, q.HasOption("A"))
	assert.False(t, q.HasOption("a"))
	assert.False(t, q.HasOption(""))
}

func TestQuestionsScan(t *testing.T) {
	var q Questions
	err := q.Scan([]byte(`[{"text":"pick","options":["A","B"]}]`))
	assert.NoError(t, err)
	assert.Equal(t, Questions{{Text: "pick", Options: []string{"A", "B"}}}, q)

	assert.Error(t, q.Scan("not bytes"))
}
