// Package locate selects a browser window from the window server's list.
package locate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/get-window-id/internal/model"
	"github.com/mj1618/get-window-id/internal/platform"
)

// DefaultFragments are the owner-name fragments identifying Chrome and Chromium.
var DefaultFragments = []string{"Chrome", "Chromium"}

// ErrWindowNotFound is returned when no on-screen window matches.
var ErrWindowNotFound = errors.New("window not found")

// Matches reports whether w is a normal application window with a window
// number whose owner name contains any of fragments. Containment is
// case-sensitive and unanchored, so "Chromium Helper" matches "Chromium".
func Matches(w model.Window, fragments []string) bool {
	if !w.IsNormal() || w.ID == 0 {
		return false
	}
	for _, f := range fragments {
		if strings.Contains(w.App, f) {
			return true
		}
	}
	return false
}

// Locate returns the first window in enumeration order that matches fragments.
func Locate(windows []model.Window, fragments []string) (model.Window, bool) {
	for _, w := range windows {
		if Matches(w, fragments) {
			return w, true
		}
	}
	return model.Window{}, false
}

// Filter returns every matching window, preserving enumeration order.
func Filter(windows []model.Window, fragments []string) []model.Window {
	result := []model.Window{}
	for _, w := range windows {
		if Matches(w, fragments) {
			result = append(result, w)
		}
	}
	return result
}

// Find queries lister once and returns the first matching window, or
// ErrWindowNotFound. There is no retry: a window that is momentarily absent
// is reported the same as one that does not exist.
func Find(ctx context.Context, lister platform.WindowLister, fragments []string) (model.Window, error) {
	windows, err := list(ctx, lister)
	if err != nil {
		return model.Window{}, err
	}
	w, ok := Locate(windows, fragments)
	if !ok {
		return model.Window{}, ErrWindowNotFound
	}
	return w, nil
}

// FindAll queries lister once and returns every matching window.
func FindAll(ctx context.Context, lister platform.WindowLister, fragments []string) ([]model.Window, error) {
	windows, err := list(ctx, lister)
	if err != nil {
		return nil, err
	}
	return Filter(windows, fragments), nil
}

func list(ctx context.Context, lister platform.WindowLister) ([]model.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	windows, err := lister.ListOnScreenWindows()
	if err != nil {
		return nil, fmt.Errorf("list on-screen windows: %w", err)
	}
	return windows, nil
}
