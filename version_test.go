package quorum_test

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(commit string) { quorum.GitCommit = commit }(quorum.GitCommit)

	quorum.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", quorum.Version())

	quorum.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", quorum.Version())
}
