package session_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/pariparajuli/geosurvey/session"
)

const nepaliMessages = `
session.error.title: त्रुटि
session.recording.saved_title: रेकर्डिङ सुरक्षित भयो!
session.recording.saved: "अडियो फाइल: {{.Path}}"
session.submit.duplicate_location: तपाईं ५ मिटरभित्र एउटै स्थानबाट धेरै सर्वेक्षण गर्न सक्नुहुन्न।
`

func nepaliLocalizer(t *testing.T) *i18n.Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	_, err := bundle.ParseMessageFileBytes([]byte(nepaliMessages), "ne.yaml")
	assert.NoError(t, err)
	return i18n.NewLocalizer(bundle, "ne")
}

func TestDescribeDefaults(t *testing.T) {
	messages := session.NewMessages(nil)

	testCases := []struct {
		err     error
		message string
	}{
		{session.ErrSurveyNotFound, "Survey data not found or incomplete."},
		{fmt.Errorf("survey 9: %w", session.ErrSurveyNotFound), "Survey data not found or incomplete."},
		{session.ErrLocationUnavailable, "Your location could not be determined. Allow location access and try again."},
		{session.ErrPermissionDenied, "Permission to access microphone was denied."},
		{session.ErrMissingIdentity, "User ID is not available. Please log in."},
		{session.ErrDuplicateLocation, "You cannot take multiple surveys in this location within 5 meters."},
		{session.ErrSubmissionFailed, "Submission failed because the server could not be reached. Try again later."},
		{fmt.Errorf("%w: 7", session.ErrInvalidQuestion), "This answer is not one of the options."},
		{session.ErrSessionClosed, "This survey session has ended."},
		{&session.RejectedError{Reason: "Survey closed"}, "Survey closed"},
		{&session.RejectedError{}, "The survey response was rejected."},
		{errors.New("boom"), "Something went wrong."},
	}

	for _, tc := range testCases {
		notice := messages.Describe(tc.err)
		assert.Equal(t, "Error", notice.Title, tc.err.Error())
		assert.Equal(t, tc.message, notice.Message, tc.err.Error())
	}

	assert.Equal(t, session.Notice{}, messages.Describe(nil))
}

func TestSubmittedNotice(t *testing.T) {
	notice := session.NewMessages(nil).Submitted()
	assert.Equal(t, session.Notice{Title: "Success", Message: "Survey responses submitted successfully!"}, notice)
}

func TestNoticeTranslations(t *testing.T) {
	messages := session.NewMessages(nepaliLocalizer(t))

	notice := messages.Describe(session.ErrDuplicateLocation)
	assert.Equal(t, "त्रुटि", notice.Title)
	assert.Equal(t, "तपाईं ५ मिटरभित्र एउटै स्थानबाट धेरै सर्वेक्षण गर्न सक्नुहुन्न।", notice.Message)

	saved := messages.RecordingSaved("/data/recordings/sita_3_1.m4a")
	assert.Equal(t, "रेकर्डिङ सुरक्षित भयो!", saved.Title)
	assert.Equal(t, "अडियो फाइल: /data/recordings/sita_3_1.m4a", saved.Message)

	// untranslated messages keep their English wording
	assert.Equal(t, "Permission to access microphone was denied.", messages.Describe(session.ErrPermissionDenied).Message)
}
