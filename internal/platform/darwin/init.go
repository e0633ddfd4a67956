//go:build darwin && cgo

package darwin

import "github.com/mj1618/get-window-id/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowLister: NewWindowLister(),
		}, nil
	}
}
