// Package notify sends best-effort desktop notifications.
//
// beeep picks the native mechanism for the host platform: osascript or
// terminal-notifier on macOS, D-Bus or notify-send on Linux, and the
// Windows Runtime on Windows. Title and message travel as arguments to
// those APIs rather than as interpolated shell text, so content cannot
// break out of a quoting context on any platform.
package notify

import (
	"runtime"

	"github.com/gen2brain/beeep"

	"github.com/instinctlab/instinct/internal/logger"
)

// NotifyFunc matches beeep.Notify and is the injection point for tests
// and headless environments.
type NotifyFunc func(title, message string, icon any) error

var notifier NotifyFunc = beeep.Notify

// SetNotifier replaces the platform notifier.
func SetNotifier(fn NotifyFunc) {
	notifier = fn
}

// ResetNotifier restores the platform notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send dispatches a desktop notification and reports whether the
// platform accepted it. Failure is normal on headless machines and on
// platforms without a notification service; it is logged, never
// propagated.
func Send(title, message string) bool {
	// Empty icon - beeep handles platform defaults.
	if err := notifier(title, message, ""); err != nil {
		logger.Warn("notify: %v", err)
		return false
	}
	return true
}

// SessionCompleted announces that a session finished.
func SessionCompleted(sessionID string) bool {
	return Send("instinct", "session "+sessionID+" complete")
}

// Mechanism names the notification mechanism beeep dispatches through
// on this host. Empty on platforms without one.
func Mechanism() string {
	switch runtime.GOOS {
	case "darwin":
		return "osascript"
	case "windows":
		return "windows runtime toast"
	case "linux", "freebsd", "netbsd", "openbsd":
		return "d-bus"
	default:
		return ""
	}
}
