package poller_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ykarpenko/hwbot/internal/poller"
	"github.com/ykarpenko/hwbot/internal/practicum"
)

// scriptedAPI returns one queued response per call, repeating the last one.
type scriptedAPI struct {
	bodies []string
	errs   []error
	calls  int
}

func (a *scriptedAPI) HomeworkStatuses(_ context.Context, _ int64) ([]byte, error) {
	i := a.calls
	if i >= len(a.bodies) {
		i = len(a.bodies) - 1
	}
	a.calls++
	if a.errs != nil && a.errs[i] != nil {
		return nil, a.errs[i]
	}
	return []byte(a.bodies[i]), nil
}

type fakeNotifier struct {
	sent []string
	fail bool
}

func (n *fakeNotifier) Send(_ context.Context, text string) bool {
	n.sent = append(n.sent, text)
	return !n.fail
}

const approvedBody = `{"homeworks": [{"homework_name": "final_project", "status": "approved"}]}`

func TestTickSendsNotificationOnce(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{approvedBody}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())
	p.Tick(context.Background())
	p.Tick(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("notifier invoked %d times for identical status, want 1 (sent: %q)", len(notifier.sent), notifier.sent)
	}
	if !strings.Contains(notifier.sent[0], "final_project") {
		t.Errorf("notification %q does not contain the homework name", notifier.sent[0])
	}
	if p.State().LastMessage != notifier.sent[0] {
		t.Errorf("LastMessage = %q, want %q", p.State().LastMessage, notifier.sent[0])
	}
}

func TestTickSendsAgainWhenStatusChanges(t *testing.T) {
	t.Parallel()

	reviewing := `{"homeworks": [{"homework_name": "final_project", "status": "reviewing"}]}`
	api := &scriptedAPI{bodies: []string{reviewing, reviewing, approvedBody}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	for range 3 {
		p.Tick(context.Background())
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("notifier invoked %d times across a status change, want 2 (sent: %q)", len(notifier.sent), notifier.sent)
	}
}

func TestTickEmptyListLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{`{"homeworks": []}`}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())
	p.Tick(context.Background())

	if len(notifier.sent) != 0 {
		t.Errorf("notifier invoked %d times for empty homeworks list, want 0", len(notifier.sent))
	}
	if state := p.State(); state.LastMessage != "" || state.LastError != "" {
		t.Errorf("state = %+v, want untouched zero state", state)
	}
}

func TestTickReportsErrorOnce(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{
		bodies: []string{"", ""},
		errs: []error{
			practicum.NewError(practicum.KindRequestFailed, "endpoint returned status 502"),
			practicum.NewError(practicum.KindRequestFailed, "endpoint returned status 502"),
		},
	}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())
	p.Tick(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("notifier invoked %d times for identical error, want 1 (sent: %q)", len(notifier.sent), notifier.sent)
	}
	if !strings.Contains(notifier.sent[0], "502") {
		t.Errorf("error report %q does not mention the status code", notifier.sent[0])
	}
}

func TestTickDistinctErrorsAreBothReported(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{
		bodies: []string{"", ""},
		errs: []error{
			practicum.NewError(practicum.KindConnectivity, "endpoint is unreachable"),
			practicum.NewError(practicum.KindRequestFailed, "endpoint returned status 500"),
		},
	}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())
	p.Tick(context.Background())

	if len(notifier.sent) != 2 {
		t.Fatalf("notifier invoked %d times for distinct errors, want 2 (sent: %q)", len(notifier.sent), notifier.sent)
	}
}

func TestTickSchemaErrorIsReported(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{`{"current_date": 1}`}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("notifier invoked %d times for schema violation, want 1", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0], "homeworks") {
		t.Errorf("schema report %q does not name the missing key", notifier.sent[0])
	}
}

func TestTickUnknownStatusReportNamesStatus(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{`{"homeworks": [{"homework_name": "x", "status": "in_progress"}]}`}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("notifier invoked %d times for unknown status, want 1", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0], "in_progress") {
		t.Errorf("report %q does not contain the offending status", notifier.sent[0])
	}
}

func TestTickFailedDeliveryIsRetriedNextPeriod(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{approvedBody}}
	notifier := &fakeNotifier{fail: true}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())
	if p.State().LastMessage != "" {
		t.Fatalf("LastMessage recorded after failed delivery: %q", p.State().LastMessage)
	}

	notifier.fail = false
	p.Tick(context.Background())

	if len(notifier.sent) != 2 {
		t.Fatalf("notifier invoked %d times, want 2 (failed attempt then retry)", len(notifier.sent))
	}
	if p.State().LastMessage == "" {
		t.Error("LastMessage not recorded after successful retry")
	}
}

func TestTickNonTaxonomyErrorStillReported(t *testing.T) {
	t.Parallel()

	api := &scriptedAPI{bodies: []string{""}, errs: []error{errors.New("unexpected failure")}}
	notifier := &fakeNotifier{}
	p := poller.New(api, notifier, 0, nil)

	p.Tick(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("notifier invoked %d times for unclassified error, want 1", len(notifier.sent))
	}
}
