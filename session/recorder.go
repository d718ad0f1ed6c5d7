package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const recordingExtension = ".m4a"

type RecordingState int

const (
	RecordingIdle RecordingState = iota
	Recording
	RecordingStopped
)

func (s RecordingState) String() string {
	switch s {
	case RecordingIdle:
		return "idle"
	case Recording:
		return "recording"
	case RecordingStopped:
		return "stopped"
	}
	return "unknown"
}

// Recorder runs at most one audio capture at a time. The device is held
// from a successful Start until the matching Stop.
type Recorder struct {
	mu sync.Mutex

	device AudioDevice
	dir    string
	now    func() time.Time
	log    *logrus.Entry

	state     RecordingState
	starting  bool
	abandoned bool
	capture   Capture
	reference string
	startedAt time.Time
	lastStamp int64
}

// NewRecorder creates a recorder writing into dir. A nil device denies
// every recording.
func NewRecorder(device AudioDevice, dir string) *Recorder {
	return &Recorder{
		device: device,
		dir:    dir,
		now:    time.Now,
		log:    logrus.WithField("prefix", "recorder"),
	}
}

func (r *Recorder) State() RecordingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reference is the output of the latest recording, empty if none was
// started
func (r *Recorder) Reference() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reference
}

func (r *Recorder) StartedAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startedAt
}

// Start begins a new recording and returns its output reference. It fails
// while another recording is running.
func (r *Recorder) Start(ctx context.Context, owner string, surveyID int64) (string, error) {
	r.mu.Lock()
	if r.state == Recording || r.starting {
		r.mu.Unlock()
		return "", ErrRecordingInProgress
	}
	r.starting = true
	r.abandoned = false
	r.mu.Unlock()

	reference, capture, err := r.start(ctx, owner, surveyID)

	r.mu.Lock()
	r.starting = false
	if err != nil {
		r.mu.Unlock()
		return "", err
	}

	if r.abandoned {
		r.mu.Unlock()
		r.log.WithField("reference", reference).Warn("recording abandoned while starting")
		return "", r.release(ctx, capture)
	}

	r.state = Recording
	r.capture = capture
	r.reference = reference
	r.startedAt = r.now()
	r.mu.Unlock()

	r.log.WithField("reference", reference).Info("recording started")
	return reference, nil
}

func (r *Recorder) start(ctx context.Context, owner string, surveyID int64) (string, Capture, error) {
	if r.device == nil {
		return "", nil, ErrPermissionDenied
	}

	granted, err := r.device.RequestPermission(ctx)
	if err != nil {
		return "", nil, withCause(ErrPermissionDenied, err)
	}
	if !granted {
		return "", nil, ErrPermissionDenied
	}

	reference := r.allocate(owner, surveyID)
	capture, err := r.device.Start(ctx, reference)
	if err != nil {
		return "", nil, fmt.Errorf("start recording: %w", err)
	}

	return reference, capture, nil
}

// allocate builds a reference unique for this recorder even when two
// recordings start within the same millisecond
func (r *Recorder) allocate(owner string, surveyID int64) string {
	r.mu.Lock()
	stamp := r.now().UnixNano() / int64(time.Millisecond)
	if stamp <= r.lastStamp {
		stamp = r.lastStamp + 1
	}
	r.lastStamp = stamp
	r.mu.Unlock()

	name := fmt.Sprintf("%s_%d_%d%s", sanitizeLabel(owner), surveyID, stamp, recordingExtension)
	return filepath.Join(r.dir, name)
}

// Stop finalizes the running recording. It does nothing when no recording
// is running. A recording still starting is released as soon as it
// started.
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.starting {
		r.abandoned = true
		r.mu.Unlock()
		return nil
	}

	if r.state != Recording {
		r.mu.Unlock()
		return nil
	}

	capture := r.capture
	r.capture = nil
	r.state = RecordingStopped
	reference := r.reference
	r.mu.Unlock()

	if err := r.release(ctx, capture); err != nil {
		return err
	}

	r.log.WithField("reference", reference).Info("recording stopped")
	return nil
}

func (r *Recorder) release(ctx context.Context, capture Capture) error {
	if capture == nil {
		return nil
	}

	if err := capture.Stop(ctx); err != nil {
		r.log.WithError(err).Error("release capture device")
		return fmt.Errorf("stop recording: %w", err)
	}
	return nil
}

func sanitizeLabel(label string) string {
	if label == "" {
		return "anonymous"
	}
	return strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return c
	}, label)
}
