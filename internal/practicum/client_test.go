package practicum_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ykarpenko/hwbot/internal/config"
	"github.com/ykarpenko/hwbot/internal/practicum"
)

func newTestClient(endpoint string) *practicum.Client {
	return practicum.NewClient(config.PracticumConfig{
		Token:    "test-token",
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	}, slog.Default())
}

func TestHomeworkStatusesSuccess(t *testing.T) {
	t.Parallel()

	var gotAuth, gotFromDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks": [], "current_date": 1700000000}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	body, err := client.HomeworkStatuses(context.Background(), 1699999999)
	if err != nil {
		t.Fatalf("HomeworkStatuses() returned unexpected error: %v", err)
	}
	if len(body) == 0 {
		t.Error("HomeworkStatuses() returned empty body")
	}
	if gotAuth != "OAuth test-token" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "OAuth test-token")
	}
	if gotFromDate != "1699999999" {
		t.Errorf("from_date = %q, want %q", gotFromDate, "1699999999")
	}
}

func TestHomeworkStatusesClassification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind practicum.Kind
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantKind: practicum.KindRequestFailed,
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantKind: practicum.KindRequestFailed,
		},
		{
			name: "non-JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>gateway error</html>"))
			},
			wantKind: practicum.KindMalformedResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.HomeworkStatuses(context.Background(), 0)
			if err == nil {
				t.Fatal("HomeworkStatuses() succeeded, want error")
			}
			if kind := practicum.KindOf(err); kind != tc.wantKind {
				t.Errorf("KindOf(err) = %v, want %v (err: %v)", kind, tc.wantKind, err)
			}
		})
	}
}

func TestHomeworkStatusesConnectionError(t *testing.T) {
	t.Parallel()

	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := newTestClient(endpoint)
	_, err := client.HomeworkStatuses(context.Background(), 0)
	if err == nil {
		t.Fatal("HomeworkStatuses() succeeded against closed server, want error")
	}
	if kind := practicum.KindOf(err); kind != practicum.KindConnectivity {
		t.Errorf("KindOf(err) = %v, want KindConnectivity (err: %v)", kind, err)
	}
}
