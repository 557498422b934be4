package version

var (
	Version = "0.1.0-alpha"

	// GitHash should be filled by:
	// 	go build -ldflags="-X github.com/reasoncore/core/version.GitHash=xxxx"
	GitHash   = "dev snapshot"
	BuildDate string
)
