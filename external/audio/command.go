package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pariparajuli/geosurvey/session"
)

// PathPlaceholder in the arguments is replaced by the output file. Without
// it the output file is appended as the last argument.
const PathPlaceholder = "{{path}}"

var ErrRecorderNotFound = errors.New("recorder command not found")

// CommandDevice records through an external program such as arecord or
// ffmpeg. The program must stop and finalize its output on SIGINT.
type CommandDevice struct {
	name string
	args []string
	log  *logrus.Entry
}

func NewCommandDevice(name string, args ...string) *CommandDevice {
	return &CommandDevice{
		name: name,
		args: args,
		log:  logrus.WithField("prefix", "audio"),
	}
}

// ParseCommand builds a device from a command line like
// "arecord -q -f cd -t wav"
func ParseCommand(line string) (*CommandDevice, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrRecorderNotFound
	}
	return NewCommandDevice(fields[0], fields[1:]...), nil
}

// RequestPermission grants access when the recorder program is installed
func (d *CommandDevice) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := exec.LookPath(d.name); err != nil {
		return false, fmt.Errorf("%w: %s", ErrRecorderNotFound, d.name)
	}
	return true, nil
}

func (d *CommandDevice) arguments(path string) []string {
	args := make([]string, 0, len(d.args)+1)
	replaced := false
	for _, a := range d.args {
		if strings.Contains(a, PathPlaceholder) {
			a = strings.Replace(a, PathPlaceholder, path, -1)
			replaced = true
		}
		args = append(args, a)
	}

	if !replaced {
		args = append(args, path)
	}
	return args
}

// Start launches the recorder writing into path. The process outlives ctx
// and runs until the returned capture is stopped.
func (d *CommandDevice) Start(ctx context.Context, path string) (session.Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	cmd := exec.Command(d.name, d.arguments(path)...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	c := &commandCapture{
		cmd:  cmd,
		path: path,
		done: make(chan struct{}),
		log:  d.log.WithField("path", path),
	}
	go c.wait()

	c.log.WithField("pid", cmd.Process.Pid).Debug("recorder started")
	return c, nil
}

type commandCapture struct {
	cmd  *exec.Cmd
	path string
	log  *logrus.Entry

	once    sync.Once
	done    chan struct{}
	waitErr error
}

func (c *commandCapture) wait() {
	c.waitErr = c.cmd.Wait()
	close(c.done)
}

// Stop interrupts the recorder and waits for it to exit. The recorder is
// killed when ctx ends first.
func (c *commandCapture) Stop(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		err = c.stop(ctx)
	})
	return err
}

func (c *commandCapture) stop(ctx context.Context) error {
	select {
	case <-c.done:
		// exited on its own, which means the recording broke off
		if c.waitErr != nil {
			return fmt.Errorf("recorder exited: %w", c.waitErr)
		}
		return nil
	default:
	}

	if err := c.cmd.Process.Signal(os.Interrupt); err != nil {
		c.log.WithError(err).Warn("interrupt recorder")
	}

	select {
	case <-c.done:
		c.log.Debug("recorder stopped")
		return nil
	case <-ctx.Done():
		if err := c.cmd.Process.Kill(); err != nil {
			c.log.WithError(err).Error("kill recorder")
		}
		<-c.done
		return ctx.Err()
	}
}
