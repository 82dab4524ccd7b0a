package notify

import (
	"errors"
	"runtime"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		message string
		mockErr error
		want    bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
			want:    true,
		},
		{
			name:    "notification error",
			title:   "Test Title",
			message: "Test Message",
			mockErr: errors.New("notification failed"),
			want:    false,
		},
		{
			name:    "headless platform",
			title:   "T",
			message: "M",
			mockErr: errors.New("no notification service available"),
			want:    false,
		},
		{
			name:    "quoting-hostile content",
			title:   `"; rm -rf / #`,
			message: `$(reboot) '"` + "`backticks`",
			want:    true,
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 session complete",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if got := Send(tt.title, tt.message); got != tt.want {
				t.Errorf("Send = %v, want %v", got, tt.want)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}

			// Content must arrive verbatim: no escaping layer may
			// rewrite what the platform API receives.
			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
		})
	}
}

func TestSessionCompleted(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if !SessionCompleted("1714000000000-0123456789ab") {
		t.Error("SessionCompleted should succeed")
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if mock.calls[0].title != "instinct" {
		t.Errorf("title = %q", mock.calls[0].title)
	}
	if mock.calls[0].message != "session 1714000000000-0123456789ab complete" {
		t.Errorf("message = %q", mock.calls[0].message)
	}
}

func TestMechanism(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "windows", "freebsd", "netbsd", "openbsd":
		if Mechanism() == "" {
			t.Errorf("Mechanism() empty on %s", runtime.GOOS)
		}
	default:
		if Mechanism() != "" {
			t.Errorf("Mechanism() = %q on %s, want empty", Mechanism(), runtime.GOOS)
		}
	}
}
