//go:build darwin

// Package darwin provides the macOS window lister using CoreGraphics.
// Enumeration requires CGo; without it the package registers nothing and
// platform.NewProvider reports ErrUnsupported.
package darwin
