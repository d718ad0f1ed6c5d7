package session

import (
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Notice is the message shown to the user after an operation
type Notice struct {
	Title   string
	Message string
}

var (
	msgSuccessTitle = &i18n.Message{ID: "session.success.title", Other: "Success"}
	msgErrorTitle   = &i18n.Message{ID: "session.error.title", Other: "Error"}

	msgSubmitted = &i18n.Message{
		ID:    "session.submit.success",
		Other: "Survey responses submitted successfully!",
	}
	msgSurveyNotFound = &i18n.Message{
		ID:    "session.survey.not_found",
		Other: "Survey data not found or incomplete.",
	}
	msgLoadFailed = &i18n.Message{
		ID:    "session.survey.load_failed",
		Other: "Failed to load survey data.",
	}
	msgLocationUnavailable = &i18n.Message{
		ID:    "session.location.unavailable",
		Other: "Your location could not be determined. Allow location access and try again.",
	}
	msgPermissionDenied = &i18n.Message{
		ID:    "session.recording.permission_denied",
		Other: "Permission to access microphone was denied.",
	}
	msgRecordingInProgress = &i18n.Message{
		ID:    "session.recording.in_progress",
		Other: "A recording is already in progress.",
	}
	msgRecordingSavedTitle = &i18n.Message{ID: "session.recording.saved_title", Other: "Recording saved!"}
	msgRecordingSaved      = &i18n.Message{
		ID:    "session.recording.saved",
		Other: "Audio file: {{.Path}}",
	}
	msgMissingIdentity = &i18n.Message{
		ID:    "session.submit.missing_identity",
		Other: "User ID is not available. Please log in.",
	}
	msgDuplicateLocation = &i18n.Message{
		ID:    "session.submit.duplicate_location",
		Other: "You cannot take multiple surveys in this location within 5 meters.",
	}
	msgRejected = &i18n.Message{
		ID:    "session.submit.rejected",
		Other: "The survey response was rejected.",
	}
	msgNetwork = &i18n.Message{
		ID:    "session.submit.network",
		Other: "Submission failed because the server could not be reached. Try again later.",
	}
	msgSubmitInProgress = &i18n.Message{
		ID:    "session.submit.in_progress",
		Other: "The survey is being submitted.",
	}
	msgInvalidAnswer = &i18n.Message{
		ID:    "session.answer.invalid",
		Other: "This answer is not one of the options.",
	}
	msgNotReady = &i18n.Message{
		ID:    "session.not_ready",
		Other: "The survey is not ready yet.",
	}
	msgClosed = &i18n.Message{
		ID:    "session.closed",
		Other: "This survey session has ended.",
	}
	msgUnknown = &i18n.Message{
		ID:    "session.unknown",
		Other: "Something went wrong.",
	}
)

// Messages renders notices in the language of a localizer
type Messages struct {
	localizer *i18n.Localizer
}

// NewMessages uses localizer for translations. A nil localizer renders the
// built-in English messages.
func NewMessages(localizer *i18n.Localizer) *Messages {
	if localizer == nil {
		localizer = i18n.NewLocalizer(i18n.NewBundle(language.English), language.English.String())
	}
	return &Messages{localizer: localizer}
}

func (m *Messages) localize(msg *i18n.Message, data map[string]interface{}) string {
	s, err := m.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && s == "" {
		return msg.Other
	}
	return s
}

func (m *Messages) failure(msg *i18n.Message) Notice {
	return Notice{
		Title:   m.localize(msgErrorTitle, nil),
		Message: m.localize(msg, nil),
	}
}

func (m *Messages) Submitted() Notice {
	return Notice{
		Title:   m.localize(msgSuccessTitle, nil),
		Message: m.localize(msgSubmitted, nil),
	}
}

func (m *Messages) RecordingSaved(path string) Notice {
	return Notice{
		Title:   m.localize(msgRecordingSavedTitle, nil),
		Message: m.localize(msgRecordingSaved, map[string]interface{}{"Path": path}),
	}
}

// Describe turns a session error into the notice the user sees. A backend
// rejection reason is shown verbatim.
func (m *Messages) Describe(err error) Notice {
	var rejected *RejectedError
	switch {
	case err == nil:
		return Notice{}
	case errors.As(err, &rejected):
		if rejected.Reason != "" {
			return Notice{Title: m.localize(msgErrorTitle, nil), Message: rejected.Reason}
		}
		return m.failure(msgRejected)
	case errors.Is(err, ErrSurveyNotFound):
		return m.failure(msgSurveyNotFound)
	case errors.Is(err, ErrLoadFailed):
		return m.failure(msgLoadFailed)
	case errors.Is(err, ErrLocationUnavailable):
		return m.failure(msgLocationUnavailable)
	case errors.Is(err, ErrPermissionDenied):
		return m.failure(msgPermissionDenied)
	case errors.Is(err, ErrRecordingInProgress):
		return m.failure(msgRecordingInProgress)
	case errors.Is(err, ErrMissingIdentity):
		return m.failure(msgMissingIdentity)
	case errors.Is(err, ErrDuplicateLocation):
		return m.failure(msgDuplicateLocation)
	case errors.Is(err, ErrSubmissionFailed):
		return m.failure(msgNetwork)
	case errors.Is(err, ErrSubmitInProgress):
		return m.failure(msgSubmitInProgress)
	case errors.Is(err, ErrInvalidQuestion), errors.Is(err, ErrInvalidOption):
		return m.failure(msgInvalidAnswer)
	case errors.Is(err, ErrNotReady):
		return m.failure(msgNotReady)
	case errors.Is(err, ErrSessionClosed):
		return m.failure(msgClosed)
	}
	return m.failure(msgUnknown)
}
