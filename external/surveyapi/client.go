package surveyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/session"
)

const (
	defaultURL     = "http://localhost:5000"
	defaultTimeout = 15 * time.Second

	// responses above this size are not read
	maxResponseSize = 1 << 20
)

var (
	ErrNotFound        = fmt.Errorf("surveyapi: %w", session.ErrSurveyNotFound)
	ErrMalformedSurvey = fmt.Errorf("surveyapi: survey without questions: %w", session.ErrSurveyNotFound)
	errEmptyCredential = fmt.Errorf("empty username or password")
)

// StatusError is returned for an unexpected response status. Code and
// Message are filled when the body is a coded error response.
type StatusError struct {
	StatusCode int
	Code       int64
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected response status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}

// Client talks to the survey backend. It implements session.Backend.
type Client interface {
	session.Backend

	ListSurveys(ctx context.Context) ([]schema.Survey, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// SetToken attaches a login token to later requests
	SetToken(token string)
}

type RegisterRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

type AuthResult struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
	Token   string `json:"jwt_token"`
}

type errorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// submissionReply is decoded separately so a coded error body is never
// mistaken for a rejection
type submissionReply struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

type client struct {
	url        string
	token      string
	httpClient *http.Client
	log        *logrus.Entry
}

func New(url string, timeout time.Duration) Client {
	u := defaultURL
	if url != "" {
		u = strings.TrimRight(url, "/")
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		url:        u,
		httpClient: &http.Client{Timeout: timeout},
		log:        logrus.WithField("prefix", "surveyapi"),
	}
}

func (c *client) SetToken(token string) {
	c.token = token
}

func (c *client) do(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, nil, err
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("request done")

	return resp.StatusCode, d, nil
}

func statusError(status int, body []byte) error {
	e := &StatusError{StatusCode: status}
	var r errorResponse
	if err := json.Unmarshal(body, &r); err == nil {
		e.Code = r.Code
		e.Message = r.Message
	}
	return e
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (c *client) GetSurvey(ctx context.Context, surveyID int64) (*schema.Survey, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/surveys/%d", surveyID), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
	}

	if !isSuccess(status) {
		return nil, statusError(status, body)
	}

	var s schema.Survey
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, err
	}

	if len(s.Questions) == 0 {
		return nil, fmt.Errorf("survey %d: %w", surveyID, ErrMalformedSurvey)
	}

	return &s, nil
}

// SubmitSurvey reports a result for every answer of the backend that
// carries a success flag. Anything else is an error.
func (c *client) SubmitSurvey(ctx context.Context, payload schema.SubmissionPayload) (*schema.SubmissionResult, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/submit_survey", payload)
	if err != nil {
		return nil, err
	}

	if status >= http.StatusInternalServerError || (!isSuccess(status) && status < http.StatusBadRequest) {
		return nil, statusError(status, body)
	}

	var r submissionReply
	if err := json.Unmarshal(body, &r); err != nil {
		if isSuccess(status) {
			return nil, fmt.Errorf("decode submission result: %w", err)
		}
		return nil, statusError(status, body)
	}

	if r.Success == nil {
		if isSuccess(status) {
			return nil, fmt.Errorf("submission result without success flag")
		}
		return nil, statusError(status, body)
	}

	if !isSuccess(status) && *r.Success {
		return nil, statusError(status, body)
	}

	return &schema.SubmissionResult{
		Success: *r.Success,
		Message: r.Message,
	}, nil
}

func (c *client) ListSurveys(ctx context.Context) ([]schema.Survey, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/surveys", nil)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, statusError(status, body)
	}

	var r struct {
		Surveys []schema.Survey `json:"surveys"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}

	return r.Surveys, nil
}

func (c *client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errEmptyCredential
	}
	return c.authenticate(ctx, "/register", req)
}

func (c *client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, errEmptyCredential
	}

	return c.authenticate(ctx, "/login", map[string]string{
		"username": username,
		"password": password,
	})
}

func (c *client) authenticate(ctx context.Context, path string, body interface{}) (*AuthResult, error) {
	status, b, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, statusError(status, b)
	}

	var r AuthResult
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
