// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/mj1618/get-window-id/internal/version.Version=v1.0.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
