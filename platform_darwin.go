//go:build darwin

package main

// Registers the CoreGraphics window lister with internal/platform.
import _ "github.com/mj1618/get-window-id/internal/platform/darwin"
