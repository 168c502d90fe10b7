// Package poller implements the homework status poll iteration: fetch,
// validate, format, and notify, with in-process deduplication of both
// status notifications and error reports.
package poller

import (
	"context"
	"log/slog"

	"github.com/ykarpenko/hwbot/internal/practicum"
	"github.com/ykarpenko/hwbot/internal/verdict"
)

// API fetches the raw homework status payload for a from_date lower bound.
type API interface {
	HomeworkStatuses(ctx context.Context, from int64) ([]byte, error)
}

// Notifier delivers a text message to the configured chat. It reports
// success or failure and never returns an error.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// State holds the last successfully delivered message and error report.
// It exists only for in-run deduplication and is lost on restart.
type State struct {
	LastMessage string
	LastError   string
}

// Poller runs one poll iteration at a time. It is driven by the scheduler
// and is the only writer of its State.
type Poller struct {
	api      API
	notifier Notifier
	from     int64
	state    State
	log      *slog.Logger
}

// New creates a Poller. from is the from_date lower bound used for every
// poll; the caller fixes it to the process start time.
func New(api API, notifier Notifier, from int64, log *slog.Logger) *Poller {
	if log == nil {
		log = slog.Default()
	}
	return &Poller{
		api:      api,
		notifier: notifier,
		from:     from,
		log:      log.With("component", "poller"),
	}
}

// State returns a copy of the current dedup state.
func (p *Poller) State() State {
	return p.state
}

// Tick executes one poll iteration. Every failure except the benign
// empty-list condition is converted to an error report and delivered
// through the notifier (once per distinct report); nothing propagates,
// so the schedule is never interrupted.
func (p *Poller) Tick(ctx context.Context) {
	msg, err := p.check(ctx)
	if err != nil {
		if practicum.IsNoHomework(err) {
			p.log.InfoContext(ctx, "No homework under review yet")
			return
		}
		p.report(ctx, err)
		return
	}

	if msg == p.state.LastMessage {
		p.log.InfoContext(ctx, "Status unchanged, skipping notification")
		return
	}

	if p.notifier.Send(ctx, msg) {
		p.state.LastMessage = msg
		p.log.InfoContext(ctx, "Status notification delivered")
	}
}

// check runs the fetch/validate/format pipeline for one iteration.
func (p *Poller) check(ctx context.Context) (string, error) {
	body, err := p.api.HomeworkStatuses(ctx, p.from)
	if err != nil {
		return "", err
	}

	hw, err := practicum.LatestHomework(body)
	if err != nil {
		return "", err
	}

	return verdict.Format(hw)
}

// report delivers an error report, deduplicated against the last one sent.
func (p *Poller) report(ctx context.Context, err error) {
	text := "Program malfunction: " + err.Error()
	p.log.ErrorContext(ctx, "Poll iteration failed", "kind", practicum.KindOf(err).String(), "error", err)

	if text == p.state.LastError {
		return
	}
	if p.notifier.Send(ctx, text) {
		p.state.LastError = text
	}
}
