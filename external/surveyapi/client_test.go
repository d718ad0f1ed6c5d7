package surveyapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pariparajuli/geosurvey/external/surveyapi"
	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/session"
)

func newServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetSurvey(t *testing.T) {
	ts := newServer(t, http.StatusOK,
		`{"id":3,"name":"Neighbourhood","questions":[{"text":"Pick","options":["A","B"]}]}`,
		func(r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/surveys/3", r.URL.Path)
		})
	defer ts.Close()

	s, err := surveyapi.New(ts.URL, time.Second).GetSurvey(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Neighbourhood", s.Name)
	assert.Equal(t, schema.Questions{{Text: "Pick", Options: []string{"A", "B"}}}, s.Questions)
}

func TestGetSurveyNotFound(t *testing.T) {
	ts := newServer(t, http.StatusNotFound, `{"error":"Survey not found"}`, nil)
	defer ts.Close()

	_, err := surveyapi.New(ts.URL, time.Second).GetSurvey(context.Background(), 9)
	assert.True(t, errors.Is(err, surveyapi.ErrNotFound))
	assert.True(t, errors.Is(err, session.ErrSurveyNotFound))
}

func TestGetSurveyWithoutQuestions(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{"id":3,"name":"Neighbourhood"}`, nil)
	defer ts.Close()

	_, err := surveyapi.New(ts.URL, time.Second).GetSurvey(context.Background(), 3)
	assert.True(t, errors.Is(err, session.ErrSurveyNotFound))
}

func TestGetSurveyServerError(t *testing.T) {
	ts := newServer(t, http.StatusInternalServerError, `{"code":999,"message":"internal server error"}`, nil)
	defer ts.Close()

	_, err := surveyapi.New(ts.URL, time.Second).GetSurvey(context.Background(), 3)
	assert.False(t, errors.Is(err, session.ErrSurveyNotFound))

	var statusErr *surveyapi.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int64(999), statusErr.Code)
}

func TestSubmitSurvey(t *testing.T) {
	payload := schema.SubmissionPayload{
		UserID:             42,
		SurveyID:           3,
		Responses:          schema.AnswerSet{0: "A"},
		Location:           schema.EncodeLocation(schema.Location{Latitude: 27.7172, Longitude: 85.324}),
		VoiceRecordingPath: "/data/recordings/sita_3_1.m4a",
	}

	ts := newServer(t, http.StatusOK, `{"success":true,"message":"Survey response submitted successfully"}`,
		func(r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/submit_survey", r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(42), body["user_id"])
			assert.Equal(t, float64(3), body["survey_id"])
			assert.Equal(t, map[string]interface{}{"0": "A"}, body["responses"])
			assert.Equal(t, `{"latitude":27.7172,"longitude":85.324}`, body["location"])
			assert.Equal(t, "/data/recordings/sita_3_1.m4a", body["voice_recording_path"])
		})
	defer ts.Close()

	c := surveyapi.New(ts.URL, time.Second)
	c.SetToken("token")

	result, err := c.SubmitSurvey(context.Background(), payload)
	assert.NoError(t, err)
	assert.Equal(t, &schema.SubmissionResult{Success: true, Message: "Survey response submitted successfully"}, result)
}

func TestSubmitSurveyOutcomes(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected *schema.SubmissionResult
	}{
		{
			name:     "rejected",
			status:   http.StatusOK,
			body:     `{"success":false,"message":"You cannot take multiple surveys in this location within 5 meters."}`,
			expected: &schema.SubmissionResult{Message: "You cannot take multiple surveys in this location within 5 meters."},
		},
		{
			name:     "rejected with client error",
			status:   http.StatusBadRequest,
			body:     `{"success":false,"message":"invalid location"}`,
			expected: &schema.SubmissionResult{Message: "invalid location"},
		},
		{name: "coded client error", status: http.StatusBadRequest, body: `{"code":1010,"message":"invalid parameters"}`},
		{name: "server error with html", status: http.StatusInternalServerError, body: `<html>oops</html>`},
		{name: "server error with rejection body", status: http.StatusBadGateway, body: `{"success":false}`},
		{name: "malformed", status: http.StatusOK, body: `{"success":`},
		{name: "missing flag", status: http.StatusOK, body: `{"message":"ok"}`},
		{name: "redirect", status: http.StatusMultipleChoices, body: `{"success":true}`},
	}

	for _, tc := range testCases {
		ts := newServer(t, tc.status, tc.body, nil)

		result, err := surveyapi.New(ts.URL, time.Second).SubmitSurvey(context.Background(), schema.SubmissionPayload{})
		if tc.expected != nil {
			assert.NoError(t, err, tc.name)
			assert.Equal(t, tc.expected, result, tc.name)
		} else {
			assert.Error(t, err, tc.name)
			assert.Nil(t, result, tc.name)
		}

		ts.Close()
	}
}

func TestSubmitSurveyTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := surveyapi.New(ts.URL, time.Second).SubmitSurvey(ctx, schema.SubmissionPayload{})
	assert.Error(t, err)
}

func TestListSurveys(t *testing.T) {
	ts := newServer(t, http.StatusOK,
		`{"surveys":[{"id":1,"name":"One","questions":[]},{"id":2,"name":"Two","questions":[]}]}`, nil)
	defer ts.Close()

	surveys, err := surveyapi.New(ts.URL, time.Second).ListSurveys(context.Background())
	assert.NoError(t, err)
	assert.Len(t, surveys, 2)
	assert.Equal(t, "Two", surveys[1].Name)
}

func TestLogin(t *testing.T) {
	ts := newServer(t, http.StatusOK,
		`{"success":true,"user_id":42,"message":"Login successful","jwt_token":"abc"}`,
		func(r *http.Request) {
			assert.Equal(t, "/login", r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"username": "sita", "password": "secret"}, body)
		})
	defer ts.Close()

	result, err := surveyapi.New(ts.URL, time.Second).Login(context.Background(), "sita", "secret")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.UserID)
	assert.Equal(t, "abc", result.Token)
}

func TestLoginInvalidCredential(t *testing.T) {
	ts := newServer(t, http.StatusUnauthorized, `{"code":1101,"message":"invalid credentials"}`, nil)
	defer ts.Close()

	_, err := surveyapi.New(ts.URL, time.Second).Login(context.Background(), "sita", "wrong")
	var statusErr *surveyapi.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "invalid credentials", statusErr.Message)

	_, err = surveyapi.New(ts.URL, time.Second).Login(context.Background(), "", "")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	ts := newServer(t, http.StatusOK,
		`{"success":true,"user_id":7,"message":"User registered successfully"}`,
		func(r *http.Request) {
			assert.Equal(t, "/register", r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "9800000000", body["phoneNumber"])
		})
	defer ts.Close()

	result, err := surveyapi.New(ts.URL, time.Second).Register(context.Background(), surveyapi.RegisterRequest{
		PhoneNumber: "9800000000",
		Username:    "sita",
		Password:    "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.UserID)
}
