package platform

import (
	"errors"
	"testing"

	"github.com/mj1618/get-window-id/internal/model"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_UsesRegisteredFunc(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	lister := StaticLister{model.Window{App: "Finder", ID: 1}}
	NewProviderFunc = func() (*Provider, error) {
		return &Provider{WindowLister: lister}, nil
	}

	p, err := NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	windows, err := p.WindowLister.ListOnScreenWindows()
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 1 || windows[0].App != "Finder" {
		t.Errorf("got %+v, want the registered lister's windows", windows)
	}
}

func TestStaticLister_ReturnsCopy(t *testing.T) {
	lister := StaticLister{model.Window{App: "Google Chrome", ID: 42}}

	windows, _ := lister.ListOnScreenWindows()
	windows[0].App = "mutated"

	again, _ := lister.ListOnScreenWindows()
	if again[0].App != "Google Chrome" {
		t.Errorf("lister contents changed through returned slice: %q", again[0].App)
	}
}

func TestStaticLister_Empty(t *testing.T) {
	windows, err := StaticLister(nil).ListOnScreenWindows()
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 0 {
		t.Errorf("expected no windows, got %d", len(windows))
	}
}
