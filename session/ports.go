package session

import (
	"context"

	"github.com/pariparajuli/geosurvey/schema"
)

// Backend is the remote survey service.
//
// GetSurvey returns an error matching ErrSurveyNotFound when no survey has
// the given id. SubmitSurvey returns an error only when the outcome is
// unknown (transport failure, unexpected status, unreadable body); a
// logical rejection is a result with Success set to false.
type Backend interface {
	GetSurvey(ctx context.Context, surveyID int64) (*schema.Survey, error)
	SubmitSurvey(ctx context.Context, payload schema.SubmissionPayload) (*schema.SubmissionResult, error)
}

// AudioDevice is the microphone of the device
type AudioDevice interface {
	RequestPermission(ctx context.Context) (bool, error)
	Start(ctx context.Context, path string) (Capture, error)
}

// Capture is an ongoing recording holding the capture device until Stop
// returns
type Capture interface {
	Stop(ctx context.Context) error
}
