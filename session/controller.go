package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pariparajuli/geosurvey/geo"
	"github.com/pariparajuli/geosurvey/schema"
)

const (
	DefaultLoadTimeout   = 10 * time.Second
	DefaultLocateTimeout = 10 * time.Second
	DefaultSubmitTimeout = 15 * time.Second
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateSubmitting
	StateAccepted
	StateRejected
	StateFailed
	StateTerminated
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	case StateFailed:
		return "failed"
	case StateTerminated:
		return "terminated"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// canSubmit covers Ready and the outcomes of a previous attempt, so every
// failure can be retried by submitting again
func (s State) canSubmit() bool {
	switch s {
	case StateReady, StateAccepted, StateRejected, StateFailed:
		return true
	}
	return false
}

// loaded reports whether a survey is available to answer
func (s State) loaded() bool {
	return s.canSubmit() || s == StateSubmitting
}

type Config struct {
	Identity schema.Identity

	LoadTimeout   time.Duration
	LocateTimeout time.Duration
	SubmitTimeout time.Duration
}

// Controller runs one survey-taking session. All state is owned by the
// controller; its lock is never held while waiting on the backend, the
// locator or the audio device.
type Controller struct {
	mu sync.Mutex

	config   Config
	backend  Backend
	locator  geo.Locator
	recorder *Recorder
	messages *Messages
	guard    *geo.Guard
	log      *logrus.Entry

	state   State
	survey  *schema.Survey
	answers *Answers
	current *schema.Location
}

func NewController(backend Backend, locator geo.Locator, recorder *Recorder, messages *Messages, config Config) *Controller {
	if config.LoadTimeout == 0 {
		config.LoadTimeout = DefaultLoadTimeout
	}
	if config.LocateTimeout == 0 {
		config.LocateTimeout = DefaultLocateTimeout
	}
	if config.SubmitTimeout == 0 {
		config.SubmitTimeout = DefaultSubmitTimeout
	}
	if recorder == nil {
		recorder = NewRecorder(nil, "")
	}
	if messages == nil {
		messages = NewMessages(nil)
	}

	return &Controller{
		config:   config,
		backend:  backend,
		locator:  locator,
		recorder: recorder,
		messages: messages,
		guard:    geo.NewGuard(),
		log: logrus.WithFields(logrus.Fields{
			"prefix":  "session",
			"user_id": config.Identity.UserID,
		}),
		state: StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Survey returns the loaded survey definition, nil before loading
func (c *Controller) Survey() *schema.Survey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.survey
}

// Location returns the current location fix, nil if none
func (c *Controller) Location() *schema.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	l := *c.current
	return &l
}

// LastAccepted returns the location of the last accepted submission
func (c *Controller) LastAccepted() *schema.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.guard.LastAccepted()
}

// Answers returns a snapshot of the current selections
func (c *Controller) Answers() schema.AnswerSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answers == nil {
		return schema.AnswerSet{}
	}
	return c.answers.Snapshot()
}

func (c *Controller) Recorder() *Recorder {
	return c.recorder
}

// Describe returns the user-facing wording of an error from this controller
func (c *Controller) Describe(err error) Notice {
	return c.messages.Describe(err)
}

// Load fetches the survey and then a location fix. A missing survey ends
// the session. A failed location fix still leaves the session Ready, but
// submissions are refused until RefreshLocation succeeds.
func (c *Controller) Load(ctx context.Context, surveyID int64) error {
	c.mu.Lock()
	switch c.state {
	case StateIdle:
	case StateClosed:
		c.mu.Unlock()
		return ErrSessionClosed
	default:
		c.mu.Unlock()
		return ErrNotReady
	}
	c.state = StateLoading
	c.mu.Unlock()

	log := c.log.WithField("survey_id", surveyID)

	fetchCtx, cancel := context.WithTimeout(ctx, c.config.LoadTimeout)
	survey, err := c.backend.GetSurvey(fetchCtx, surveyID)
	cancel()

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return ErrSessionClosed
	}

	if err == nil && (survey == nil || len(survey.Questions) == 0) {
		err = ErrSurveyNotFound
	}

	if err != nil {
		if errors.Is(err, ErrSurveyNotFound) {
			c.state = StateTerminated
			c.mu.Unlock()
			log.WithError(err).Warn("survey not found")
			return ErrSurveyNotFound
		}

		c.state = StateIdle
		c.mu.Unlock()
		log.WithError(err).Error("load survey")
		return withCause(ErrLoadFailed, err)
	}

	if survey.ID == 0 {
		survey.ID = surveyID
	}
	c.survey = survey
	c.answers = NewAnswers(survey.Questions)
	c.mu.Unlock()

	locateErr := c.locate(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosed {
		return ErrSessionClosed
	}
	c.state = StateReady

	log.WithField("questions", len(survey.Questions)).Info("survey loaded")
	return locateErr
}

// RefreshLocation acquires a new location fix for the loaded survey
func (c *Controller) RefreshLocation(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return ErrSessionClosed
	}
	if !c.state.loaded() {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.mu.Unlock()

	return c.locate(ctx)
}

func (c *Controller) locate(ctx context.Context) error {
	if c.locator == nil {
		c.setLocation(nil)
		return ErrLocationUnavailable
	}

	locateCtx, cancel := context.WithTimeout(ctx, c.config.LocateTimeout)
	loc, err := c.locator.Locate(locateCtx)
	cancel()

	if err != nil {
		c.log.WithError(err).Warn("location fix")
		c.setLocation(nil)
		return withCause(ErrLocationUnavailable, err)
	}

	c.setLocation(&loc)
	return nil
}

func (c *Controller) setLocation(loc *schema.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosed {
		return
	}
	c.current = loc
}

// Select records an answer. Selections made while a submission is in
// flight only affect later submissions.
func (c *Controller) Select(index int, option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return ErrSessionClosed
	}
	if !c.state.loaded() {
		return ErrNotReady
	}

	return c.answers.Select(index, option)
}

// StartRecording begins an audio recording under the user's name and
// returns its reference
func (c *Controller) StartRecording(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return "", ErrSessionClosed
	}
	if !c.state.loaded() {
		c.mu.Unlock()
		return "", ErrNotReady
	}
	owner := c.config.Identity.Username
	surveyID := c.survey.ID
	c.mu.Unlock()

	return c.recorder.Start(ctx, owner, surveyID)
}

// StopRecording finalizes a running recording. Without one it returns an
// empty notice.
func (c *Controller) StopRecording(ctx context.Context) (Notice, error) {
	wasRecording := c.recorder.State() == Recording
	if err := c.recorder.Stop(ctx); err != nil {
		return c.messages.Describe(err), err
	}

	if !wasRecording {
		return Notice{}, nil
	}
	return c.messages.RecordingSaved(c.recorder.Reference()), nil
}

// Submit sends the current answers. Identity, location and the geofence are
// checked before any request is made. Failures are not retried.
func (c *Controller) Submit(ctx context.Context) (Notice, error) {
	payload, location, err := c.prepare()
	if err != nil {
		return c.messages.Describe(err), err
	}

	log := c.log.WithFields(logrus.Fields{
		"survey_id": payload.SurveyID,
		"answers":   len(payload.Responses),
		"location":  location.String(),
	})

	submitCtx, cancel := context.WithTimeout(ctx, c.config.SubmitTimeout)
	result, err := c.backend.SubmitSurvey(submitCtx, payload)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		log.Warn("session closed during submission, result discarded")
		return c.messages.Describe(ErrSessionClosed), ErrSessionClosed
	}

	if err == nil && result == nil {
		err = errors.New("empty submission result")
	}

	if err != nil {
		c.state = StateFailed
		log.WithError(err).Error("submission failed")
		err = withCause(ErrSubmissionFailed, err)
		return c.messages.Describe(err), err
	}

	if !result.Success {
		c.state = StateRejected
		log.WithField("reason", result.Message).Warn("submission rejected")
		err := &RejectedError{Reason: result.Message}
		return c.messages.Describe(err), err
	}

	c.state = StateAccepted
	c.guard.RecordAccepted(location)
	log.Info("submission accepted")
	return c.messages.Submitted(), nil
}

// prepare validates a submission and builds its payload, moving the
// session into Submitting
func (c *Controller) prepare() (schema.SubmissionPayload, schema.Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.state == StateClosed:
		return schema.SubmissionPayload{}, schema.Location{}, ErrSessionClosed
	case c.state == StateSubmitting:
		return schema.SubmissionPayload{}, schema.Location{}, ErrSubmitInProgress
	case !c.state.canSubmit():
		return schema.SubmissionPayload{}, schema.Location{}, ErrNotReady
	}

	if !c.config.Identity.Present() {
		return schema.SubmissionPayload{}, schema.Location{}, ErrMissingIdentity
	}

	if c.current == nil {
		return schema.SubmissionPayload{}, schema.Location{}, ErrLocationUnavailable
	}

	if c.guard.IsDuplicate(c.current) {
		c.log.WithField("location", c.current.String()).Info("submission blocked by geofence")
		return schema.SubmissionPayload{}, schema.Location{}, ErrDuplicateLocation
	}

	location := *c.current
	payload := schema.SubmissionPayload{
		UserID:             c.config.Identity.UserID,
		SurveyID:           c.survey.ID,
		Responses:          c.answers.Snapshot(),
		Location:           schema.EncodeLocation(location),
		VoiceRecordingPath: c.recorder.Reference(),
	}
	c.state = StateSubmitting

	return payload, location, nil
}

// Close ends the session and releases a pending recording. A submission
// still in flight is not cancelled but its result is ignored.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosed
	c.mu.Unlock()

	c.log.Info("session closed")
	return c.recorder.Stop(ctx)
}
