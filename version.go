package quorum

// Release is the semantic version of this build. GitCommit is set at
// link time:
//
//   go build -ldflags "-X github.com/iov-one/quorum.GitCommit=$(git rev-parse --short HEAD)"
var (
	Release   = "v0.1.0-dev"
	GitCommit = ""
)

// Version is printed by "quorumd version".
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
