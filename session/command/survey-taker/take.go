package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/session"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in *bufio.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

// readLine returns the next trimmed input line. It returns io.EOF once the
// input is exhausted.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) confirm(question string) bool {
	_, _ = fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := p.readLine()
	if err != nil {
		return false
	}
	return strings.EqualFold(line, "y") || strings.EqualFold(line, "yes")
}

func (p *prompter) notice(n session.Notice) {
	if n.Title == "" && n.Message == "" {
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s: %s\n", n.Title, n.Message)
}

// answer asks every question once. An empty line leaves a question
// unanswered.
func (p *prompter) answer(c *session.Controller, survey *schema.Survey) error {
	for i, q := range survey.Questions {
		_, _ = fmt.Fprintf(p.out, "\n%d. %s\n", i+1, q.Text)
		for j, o := range q.Options {
			_, _ = fmt.Fprintf(p.out, "   %d) %s\n", j+1, o)
		}

		for {
			_, _ = fmt.Fprint(p.out, "> ")
			line, err := p.readLine()
			if err != nil {
				return err
			}
			if line == "" {
				break
			}

			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(q.Options) {
				_, _ = fmt.Fprintf(p.out, "choose 1-%d or leave empty to skip\n", len(q.Options))
				continue
			}

			if err := c.Select(i, q.Options[n-1]); err != nil {
				p.notice(c.Describe(err))
				continue
			}
			break
		}
	}
	return nil
}

// runSession drives one controller from loading to submission
func runSession(ctx context.Context, c *session.Controller, surveyID int64, record bool, p *prompter) error {
	defer func() {
		if err := c.Close(ctx); err != nil {
			p.notice(c.Describe(err))
		}
	}()

	err := c.Load(ctx, surveyID)
	if errors.Is(err, session.ErrLocationUnavailable) {
		p.notice(c.Describe(err))
	} else if err != nil {
		p.notice(c.Describe(err))
		return err
	}

	survey := c.Survey()
	_, _ = fmt.Fprintf(p.out, "%s\n", survey.Name)

	if record {
		ref, err := c.StartRecording(ctx)
		if err != nil {
			p.notice(c.Describe(err))
		} else {
			_, _ = fmt.Fprintf(p.out, "recording to %s\n", ref)
		}
	}

	answerErr := p.answer(c, survey)

	notice, err := c.StopRecording(ctx)
	if err != nil {
		p.notice(c.Describe(err))
	} else {
		p.notice(notice)
	}

	if answerErr != nil && answerErr != io.EOF {
		return answerErr
	}

	for {
		notice, err := c.Submit(ctx)
		p.notice(notice)

		switch {
		case err == nil:
			return nil
		case errors.Is(err, session.ErrSubmissionFailed):
			sentry.CaptureException(err)
			if !p.confirm("Try again?") {
				return err
			}
		case errors.Is(err, session.ErrLocationUnavailable):
			if !p.confirm("Retry locating?") {
				return err
			}
			if err := c.RefreshLocation(ctx); err != nil {
				p.notice(c.Describe(err))
			}
		default:
			return err
		}
	}
}
