package platform

import "github.com/mj1618/get-window-id/internal/model"

// WindowLister enumerates windows from the OS window server.
type WindowLister interface {
	// ListOnScreenWindows returns every on-screen window in the order the
	// window server reports them (front to back on macOS). Each call queries
	// the window server afresh.
	ListOnScreenWindows() ([]model.Window, error)
}

// StaticLister is a WindowLister over a fixed slice of windows.
type StaticLister []model.Window

// ListOnScreenWindows returns a copy of the fixed window list.
func (s StaticLister) ListOnScreenWindows() ([]model.Window, error) {
	out := make([]model.Window, len(s))
	copy(out, s)
	return out, nil
}
