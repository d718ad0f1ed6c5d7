package schema

import (
	"strconv"
)

const (
	SurveyResponseCollection = "survey_responses"
)

// AnswerSet maps a question index to the chosen option
type AnswerSet map[int]string

// Strings converts the answer keys into their decimal form for storage
func (a AnswerSet) Strings() map[string]string {
	m := make(map[string]string, len(a))
	for k, v := range a {
		m[strconv.Itoa(k)] = v
	}
	return m
}

// SubmissionPayload is the body of a survey submission. Location holds a
// serialized Location, see EncodeLocation.
type SubmissionPayload struct {
	UserID             int64     `json:"user_id"`
	SurveyID           int64     `json:"survey_id"`
	Responses          AnswerSet `json:"responses"`
	Location           string    `json:"location"`
	VoiceRecordingPath string    `json:"voice_recording_path,omitempty"`
}

type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SurveyResponse is a stored submission
type SurveyResponse struct {
	UserID             int64             `json:"user_id" bson:"user_id"`
	SurveyID           int64             `json:"survey_id" bson:"survey_id"`
	Responses          map[string]string `json:"responses" bson:"responses"`
	Location           *GeoJSON          `json:"location,omitempty" bson:"location,omitempty"`
	RawLocation        string            `json:"raw_location" bson:"raw_location"`
	Place              *Place            `json:"place,omitempty" bson:"place,omitempty"`
	VoiceRecordingPath string            `json:"voice_recording_path" bson:"voice_recording_path"`
	Timestamp          int64             `json:"ts" bson:"ts"`
}
