package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const MinimumOptionCount = 2

var (
	ErrEmptySurveyName = errors.New("survey name is empty")
	ErrNoQuestions     = errors.New("survey has no questions")
)

type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// HasOption reports whether option is one of the declared options
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

type Questions []Question

func (q Questions) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *Questions) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, q)
}

type Survey struct {
	ID        int64     `json:"id" gorm:"primary_key"`
	Name      string    `json:"name" gorm:"not null"`
	Questions Questions `json:"questions" gorm:"type:jsonb;not null;default '[]'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks a survey definition before it is stored
func (s Survey) Validate() error {
	if s.Name == "" {
		return ErrEmptySurveyName
	}

	if len(s.Questions) == 0 {
		return ErrNoQuestions
	}

	for i, q := range s.Questions {
		if q.Text == "" {
			return fmt.Errorf("question %d has no text", i)
		}

		if len(q.Options) < MinimumOptionCount {
			return fmt.Errorf("question %d needs at least %d options", i, MinimumOptionCount)
		}

		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o] {
				return fmt.Errorf("question %d has duplicated option %q", i, o)
			}
			seen[o] = true
		}
	}

	return nil
}
